package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasure-map-service/internal/domain"
)

func TestParse(t *testing.T) {
	doc := `
LANGUAGE_CODE: ru-ru
TREASURE_MAP:
  BACKEND: treasuremap.backends.yandex.YandexMapBackend
  API_KEY: random_string
  SIZE: [500, "300"]
  ONLY_MAP: false
  MAP_OPTIONS:
    latitude: 44.1
    longitude: -55.1
    zoom: 1
`
	s, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.NotNil(t, s.TreasureMap)

	tm := s.TreasureMap
	assert.Equal(t, "treasuremap.backends.yandex.YandexMapBackend", tm.Backend)
	assert.Equal(t, "random_string", tm.APIKey)
	assert.Equal(t, []any{500, "300"}, tm.Size)
	assert.Nil(t, tm.AdminSize)
	require.NotNil(t, tm.OnlyMap)
	assert.False(t, *tm.OnlyMap)
	assert.Equal(t, 44.1, tm.MapOptions["latitude"])
	assert.Equal(t, 1, tm.MapOptions["zoom"])
	assert.Equal(t, "ru-ru", tm.LanguageCode)
}

func TestParseEmptySection(t *testing.T) {
	s, err := Parse([]byte("TREASURE_MAP: {}\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultLanguageCode, s.LanguageCode)
	assert.Equal(t, DefaultLanguageCode, s.TreasureMap.LanguageCode)
	assert.Empty(t, s.TreasureMap.Backend)
}

func TestParseMissingSection(t *testing.T) {
	_, err := Parse([]byte("LANGUAGE_CODE: en-us\n"))
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("TREASURE_MAP:\n  SIZE: Invalid\n"))
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestLoadAppliesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "treasuremap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("TREASURE_MAP:\n  BACKEND: google\n"), 0o600))

	t.Setenv("TREASURE_MAP_BACKEND", "yandex")
	t.Setenv("TREASURE_MAP_API_KEY", "secret")
	t.Setenv("LANGUAGE_CODE", "tr-tr")

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "yandex", s.TreasureMap.Backend)
	assert.Equal(t, "secret", s.TreasureMap.APIKey)
	assert.Equal(t, "tr-tr", s.TreasureMap.LanguageCode)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestGet(t *testing.T) {
	t.Setenv("TREASURE_MAP_TEST_KEY", "value")

	assert.Equal(t, "value", Get("TREASURE_MAP_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", Get("TREASURE_MAP_UNSET_KEY", "fallback"))
}
