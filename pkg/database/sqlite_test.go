package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLiteDB_CreatesFileAndTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "zentube.db")
	ctx := context.Background()

	db, err := NewSQLiteDB(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, path, db.Path())

	var name string
	err = db.DB.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'kv_store'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv_store", name)
	assert.NoError(t, db.Health(ctx))
}

func TestDefaultSQLitePath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/zentube/zentube.db", DefaultSQLitePath())
}
