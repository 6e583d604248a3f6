package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasure-map-service/internal/adapters/repositories"
)

func TestCheckConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "treasuremap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
LANGUAGE_CODE: ru-ru
TREASURE_MAP:
  BACKEND: yandex
  ADMIN_SIZE: [800, 600]
`), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"check-config", "--config", path})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "backend:  yandex")
	assert.Contains(t, out.String(), "api js:   //api-maps.yandex.ru/2.1/?lang=ru-ru")
	assert.Contains(t, out.String(), "size:     400x400 (admin 800x600)")
}

func TestCheckConfigUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "treasuremap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("TREASURE_MAP:\n  BACKEND: nowhere\n"), 0o600))

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"check-config", "--config", path})
	assert.Error(t, rootCmd.Execute())
}

func TestSeedAndNormalize(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "app.db")
	seeds := filepath.Join(dir, "places.json")
	require.NoError(t, os.WriteFile(seeds, []byte(`[{"place_id": 1, "name": "a", "point": "1.5;2"}]`), 0o600))

	rootCmd.SetArgs([]string{"seed", "--database-url", "", "--db", db, "--file", seeds})
	require.NoError(t, rootCmd.Execute())

	store, err := repositories.OpenStore("", db)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.DB.Exec(`UPDATE places SET point = '1.5;2' WHERE place_id = 1`)
	require.NoError(t, err)

	n, err := normalizePlaces(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var point string
	require.NoError(t, store.DB.QueryRow(`SELECT point FROM places WHERE place_id = 1`).Scan(&point))
	assert.Equal(t, "1.500000;2.000000", point)
}
