package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteMemory(t *testing.T) {
	conn, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, 1, conn.Stats().MaxOpenConnections)
}

func TestOpenSQLiteUnreachablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "app.db")

	conn, err := OpenSQLite(path)
	assert.Error(t, err)
	assert.Nil(t, conn)
}
