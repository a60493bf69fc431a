package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func TestSQLite_PutGet(t *testing.T) {
	st := newTestSQLiteStorage(t)
	ctx := context.Background()

	require.NoError(t, st.Put(ctx, "data/US", []byte(`{"id":"data/US"}`)))

	data, err := st.Get(ctx, "data/US")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"data/US"}`, string(data))
}

func TestSQLite_Missing(t *testing.T) {
	st := newTestSQLiteStorage(t)

	data, err := st.Get(context.Background(), "data/XX")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSQLite_Overwrite(t *testing.T) {
	st := newTestSQLiteStorage(t)
	ctx := context.Background()

	require.NoError(t, st.Put(ctx, "data/US", []byte("original")))
	require.NoError(t, st.Put(ctx, "data/US", []byte("updated")))

	data, err := st.Get(ctx, "data/US")
	require.NoError(t, err)
	assert.Equal(t, "updated", string(data))
}

func TestSQLite_MigrateIdempotent(t *testing.T) {
	st := newTestSQLiteStorage(t)
	require.NoError(t, st.Migrate(context.Background()))
}
