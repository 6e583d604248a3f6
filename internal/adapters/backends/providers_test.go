package backends

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasure-map-service/internal/config"
)

func TestGoogleAPIJS(t *testing.T) {
	g, err := NewGoogle(config.TreasureMap{})
	require.NoError(t, err)

	js, err := g.APIJS()
	require.NoError(t, err)
	assert.Equal(t, "//maps.googleapis.com/maps/api/js?v=3.exp", js)

	g, err = NewGoogle(config.TreasureMap{APIKey: "random_string"})
	require.NoError(t, err)

	js, err = g.APIJS()
	require.NoError(t, err)
	assert.Equal(t, "//maps.googleapis.com/maps/api/js?v=3.exp&key=random_string", js)
}

func TestGoogleJS(t *testing.T) {
	g, err := NewGoogle(config.TreasureMap{})
	require.NoError(t, err)

	assert.Equal(t, "google", g.Name())
	js, err := g.JS()
	require.NoError(t, err)
	assert.Equal(t, "treasuremap/default/js/jquery.treasuremap-google.js", js)
}

func TestYandexAPIJS(t *testing.T) {
	y, err := NewYandex(config.TreasureMap{APIKey: "random_string", LanguageCode: "en-us"})
	require.NoError(t, err)

	js, err := y.APIJS()
	require.NoError(t, err)
	assert.Equal(t, "//api-maps.yandex.ru/2.1/?lang=en-us&pikey=random_string", js)

	y, err = NewYandex(config.TreasureMap{})
	require.NoError(t, err)

	js, err = y.APIJS()
	require.NoError(t, err)
	assert.Equal(t, "//api-maps.yandex.ru/2.1/?lang=en-us", js)
}

func TestYandexJS(t *testing.T) {
	y, err := NewYandex(config.TreasureMap{})
	require.NoError(t, err)

	assert.Equal(t, "yandex", y.Name())
	js, err := y.JS()
	require.NoError(t, err)
	assert.Equal(t, "treasuremap/default/js/jquery.treasuremap-yandex.js", js)
}

func TestAPIJSEscapesKey(t *testing.T) {
	g, err := NewGoogle(config.TreasureMap{APIKey: "a b&c"})
	require.NoError(t, err)

	js, err := g.APIJS()
	require.NoError(t, err)
	assert.Equal(t, "//maps.googleapis.com/maps/api/js?v=3.exp&key=a+b%26c", js)
}
