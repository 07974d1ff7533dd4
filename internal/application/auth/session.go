package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/invorya/panel-inventario/internal/domain/entity"
	"github.com/invorya/panel-inventario/internal/domain/repository"
)

// Session máquina de dos estados: Anónimo y Autenticado(token, username).
// La copia en memoria y el almacén durable se mueven juntos:
//
//   - Anónimo → Autenticado solo vía Establish (tras un login exitoso):
//     primero se persiste, luego se refleja en memoria.
//   - Autenticado → Anónimo vía Clear (logout explícito o 401 del backend):
//     la memoria se limpia siempre, aunque el borrado durable falle; estado
//     autenticado parcial o rancio nunca se tolera.
//
// Restore hace el arranque optimista: si el almacén tiene una sesión completa
// se pasa a Autenticado sin revalidar contra el backend; un token revocado se
// descubre de forma perezosa con el primer 401.
//
// Es seguro para uso concurrente; los handlers y el cliente REST comparten la
// misma instancia.
type Session struct {
	mu    sync.RWMutex
	store repository.SessionStore
	cur   *entity.Session // nil = Anónimo
}

// NewSession crea una sesión en estado Anónimo.
func NewSession(store repository.SessionStore) *Session {
	return &Session{store: store}
}

// Restore carga la sesión persistida si existe. Devuelve true si quedó
// Autenticado.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	persisted, err := s.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("restaurar sesión: %w", err)
	}
	if persisted == nil {
		return false, nil
	}

	s.mu.Lock()
	s.cur = persisted
	s.mu.Unlock()
	return true, nil
}

// Establish persiste la sesión y la deja en memoria. Si la persistencia
// falla, el estado en memoria no cambia.
func (s *Session) Establish(ctx context.Context, sess entity.Session) error {
	if err := s.store.Save(ctx, sess); err != nil {
		return fmt.Errorf("establecer sesión: %w", err)
	}

	s.mu.Lock()
	s.cur = &sess
	s.mu.Unlock()
	return nil
}

// Clear vuelve a Anónimo. La memoria se limpia incondicionalmente; el error
// del almacén (si lo hay) se devuelve para que el llamador lo registre.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.cur = nil
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("limpiar sesión: %w", err)
	}
	return nil
}

// Token devuelve la credencial vigente. ok=false en estado Anónimo.
func (s *Session) Token() (token string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return "", false
	}
	return s.cur.Token, true
}

// Username devuelve el nombre del operador autenticado, o "" si Anónimo.
func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return ""
	}
	return s.cur.Username
}

// Authenticated indica si hay sesión vigente.
func (s *Session) Authenticated() bool {
	_, ok := s.Token()
	return ok
}
