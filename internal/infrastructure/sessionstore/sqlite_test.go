package sessionstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/panel-inventario/internal/domain/entity"
	"github.com/invorya/panel-inventario/internal/infrastructure/sessionstore"
)

func newTestStore(t *testing.T) *sessionstore.Store {
	t.Helper()
	db, err := sessionstore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := sessionstore.New(db)
	require.NoError(t, err)
	return store
}

func TestStore_SinSesion_LoadDevuelveNil(t *testing.T) {
	store := newTestStore(t)

	sess, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sess, "sin Save previo no debe haber sesión")
}

func TestStore_SaveYLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, entity.Session{Token: "tok-abc", Username: "admin"}))

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "tok-abc", sess.Token)
	assert.Equal(t, "admin", sess.Username)
}

func TestStore_SaveSobrescribe(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, entity.Session{Token: "viejo", Username: "admin"}))
	require.NoError(t, store.Save(ctx, entity.Session{Token: "nuevo", Username: "manager"}))

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "nuevo", sess.Token)
	assert.Equal(t, "manager", sess.Username)
}

func TestStore_ClearBorraAmbasEntradas(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, entity.Session{Token: "tok", Username: "admin"}))
	require.NoError(t, store.Clear(ctx))

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess, "tras Clear no debe quedar token ni username")
}

func TestStore_ClearSinSesion_NoEsError(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Clear(context.Background()))
}
