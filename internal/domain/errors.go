package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrUnauthorized login rechazado por el backend (credenciales inválidas).
	ErrUnauthorized = errors.New("no autorizado")
	// ErrSessionExpired el backend respondió 401 a una llamada autenticada.
	// La sesión ya fue invalidada cuando este error llega al llamador.
	ErrSessionExpired = errors.New("sesión expirada")
	// ErrLoadFailed la carga conjunta del dashboard falló; no se aplica
	// ningún resultado parcial.
	ErrLoadFailed      = errors.New("carga del dashboard fallida")
	ErrMalformedRecord = errors.New("registro de inventario malformado")
	ErrNoSnapshot      = errors.New("dashboard sin datos cargados")
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
)

// AuthError error de login con el mensaje devuelto por el backend, para
// mostrarlo tal cual en la vista de login. Unwrap permite errors.Is con
// ErrUnauthorized.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return ErrUnauthorized.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error { return ErrUnauthorized }
