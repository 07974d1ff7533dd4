package repository

import (
	"context"

	"github.com/invorya/panel-inventario/internal/domain/entity"
)

// AuthGateway puerto hacia el login del backend.
// Un rechazo de credenciales se reporta como *domain.AuthError con el mensaje
// del backend; el rechazo NO invalida la sesión vigente (el canal de login es
// ajeno al manejo central de 401).
type AuthGateway interface {
	Login(ctx context.Context, username, password string) (*entity.Session, error)
}

// SessionStore puerto del almacén durable de la sesión (token + username).
// Las dos entradas se guardan y se borran juntas, atómicamente: nunca debe
// quedar un token sin username ni al revés.
type SessionStore interface {
	// Load devuelve la sesión persistida, o nil si no hay una completa.
	Load(ctx context.Context) (*entity.Session, error)
	Save(ctx context.Context, s entity.Session) error
	Clear(ctx context.Context) error
}
