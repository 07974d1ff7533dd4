// Package sessionstore implementa el almacén durable de la sesión del
// operador sobre SQLite: el equivalente del localStorage del navegador, dos
// entradas key/value (token, username) que sobreviven al reinicio del proceso.
package sessionstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/invorya/panel-inventario/internal/domain/entity"
	"github.com/invorya/panel-inventario/internal/domain/repository"
)

const (
	keyToken    = "token"
	keyUsername = "username"
)

// Verificar en tiempo de compilación que Store implementa SessionStore.
var _ repository.SessionStore = (*Store)(nil)

// Open abre (o crea) la base SQLite y configura pragmas.
// path admite ":memory:" para tests.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir base de sesión: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", p, err)
		}
	}

	return db, nil
}

// Store almacén key/value de la sesión.
type Store struct {
	db *sql.DB
}

// New crea el esquema si no existe y devuelve el almacén.
func New(db *sql.DB) (*Store, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS session (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("crear tabla session: %w", err)
	}
	return &Store{db: db}, nil
}

// Load devuelve la sesión persistida. Si falta cualquiera de las dos entradas
// la sesión se considera inexistente (nil, nil): media sesión no es sesión.
func (s *Store) Load(ctx context.Context) (*entity.Session, error) {
	token, err := s.get(ctx, keyToken)
	if err != nil {
		return nil, err
	}
	username, err := s.get(ctx, keyUsername)
	if err != nil {
		return nil, err
	}
	if token == "" || username == "" {
		return nil, nil
	}
	return &entity.Session{Token: token, Username: username}, nil
}

// Save persiste token y username en una sola transacción.
func (s *Store) Save(ctx context.Context, sess entity.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	defer tx.Rollback()

	const upsert = `INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := tx.ExecContext(ctx, upsert, keyToken, sess.Token); err != nil {
		return fmt.Errorf("guardar token: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsert, keyUsername, sess.Username); err != nil {
		return fmt.Errorf("guardar username: %w", err)
	}
	return tx.Commit()
}

// Clear borra ambas entradas atómicamente. Borrar una sesión inexistente no
// es error.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM session WHERE key IN (?, ?)`, keyToken, keyUsername)
	if err != nil {
		return fmt.Errorf("limpiar sesión: %w", err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("leer %s: %w", key, err)
	}
	return value, nil
}
