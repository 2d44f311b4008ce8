package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"oddly-ddd/config"
	"oddly-ddd/config/sqlite"
)

func TestConnect_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "app.db")

	db, err := sqlite.Connect(context.Background(), config.SQLiteConfig{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Disconnect(context.Background(), db) })

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	require.Equal(t, "wal", mode)
	require.Equal(t, 1, db.Stats().MaxOpenConnections)
}

func TestConnect_RequiresPath(t *testing.T) {
	_, err := sqlite.Connect(context.Background(), config.SQLiteConfig{})
	require.Error(t, err)
}
