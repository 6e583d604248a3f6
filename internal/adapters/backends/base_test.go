package backends

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasure-map-service/internal/config"
	"treasure-map-service/internal/domain"
	"treasure-map-service/internal/ports"
)

func boolPtr(b bool) *bool { return &b }

func TestBaseInit(t *testing.T) {
	b, err := NewBase(config.TreasureMap{})
	require.NoError(t, err)

	assert.Empty(t, b.Name())
	assert.Empty(t, b.APIURL())
	assert.Empty(t, b.APIKey())
}

func TestBaseJSIsAbstract(t *testing.T) {
	b, err := NewBase(config.TreasureMap{})
	require.NoError(t, err)

	_, err = b.JS()
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestBaseIsNotAMapProvider(t *testing.T) {
	var backend ports.Backend = &Base{}

	_, ok := backend.(ports.MapProvider)
	assert.False(t, ok)
}

func TestBaseWidgetTemplate(t *testing.T) {
	b, err := NewBase(config.TreasureMap{})
	require.NoError(t, err)
	assert.Equal(t, "treasuremap/widgets/map.html", b.WidgetTemplate())

	b, err = NewBase(config.TreasureMap{WidgetTemplate: "template/custom.html"})
	require.NoError(t, err)
	assert.Equal(t, "template/custom.html", b.WidgetTemplate())
}

func TestBaseAPIKey(t *testing.T) {
	b, err := NewBase(config.TreasureMap{APIKey: "random_string"})
	require.NoError(t, err)

	assert.Equal(t, "random_string", b.APIKey())
}

func TestBaseOnlyMap(t *testing.T) {
	b, err := NewBase(config.TreasureMap{})
	require.NoError(t, err)
	assert.True(t, b.OnlyMap())

	b, err = NewBase(config.TreasureMap{OnlyMap: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, b.OnlyMap())
}

func TestBaseSizeDefault(t *testing.T) {
	b, err := NewBase(config.TreasureMap{})
	require.NoError(t, err)

	w, h := b.Size()
	assert.Equal(t, 400, w)
	assert.Equal(t, 400, h)

	w, h = b.AdminSize()
	assert.Equal(t, 400, w)
	assert.Equal(t, 400, h)
}

func TestBaseSizeSettings(t *testing.T) {
	b, err := NewBase(config.TreasureMap{
		Size:      []any{500, 500},
		AdminSize: []any{"640", 480.0},
	})
	require.NoError(t, err)

	w, h := b.Size()
	assert.Equal(t, 500, w)
	assert.Equal(t, 500, h)

	w, h = b.AdminSize()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestBaseSizeInvalid(t *testing.T) {
	tests := []struct {
		name     string
		settings config.TreasureMap
	}{
		{name: "single value", settings: config.TreasureMap{Size: []any{"Invalid"}}},
		{name: "empty tuple", settings: config.TreasureMap{Size: []any{}}},
		{name: "three values", settings: config.TreasureMap{Size: []any{1, 2, 3}}},
		{name: "not a number", settings: config.TreasureMap{Size: []any{"wide", 400}}},
		{name: "negative", settings: config.TreasureMap{Size: []any{-1, 400}}},
		{name: "admin", settings: config.TreasureMap{AdminSize: []any{"Invalid"}}},
		{name: "admin type", settings: config.TreasureMap{AdminSize: []any{true, 400}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBase(tt.settings)
			assert.ErrorIs(t, err, domain.ErrConfig)
		})
	}
}

func TestBaseMapOptionsDefault(t *testing.T) {
	b, err := NewBase(config.TreasureMap{})
	require.NoError(t, err)

	assert.Equal(t, ports.MapOptions{
		"latitude":  51.562519,
		"longitude": -1.603156,
		"zoom":      5,
	}, b.MapOptions())
}

func TestBaseMapOptionsSettings(t *testing.T) {
	b, err := NewBase(config.TreasureMap{MapOptions: map[string]any{
		"latitude":  44.1,
		"longitude": -55.1,
		"zoom":      1,
	}})
	require.NoError(t, err)

	assert.Equal(t, ports.MapOptions{
		"latitude":  44.1,
		"longitude": -55.1,
		"zoom":      1,
	}, b.MapOptions())
}

func TestBaseMapOptionsPartial(t *testing.T) {
	settings := config.TreasureMap{MapOptions: map[string]any{
		"zoom":        12,
		"latitude":    0,
		"scrollwheel": false,
	}}
	b, err := NewBase(settings)
	require.NoError(t, err)

	opts := b.MapOptions()
	assert.Equal(t, 51.562519, opts["latitude"])
	assert.Equal(t, -1.603156, opts["longitude"])
	assert.Equal(t, 12, opts["zoom"])
	assert.Equal(t, false, opts["scrollwheel"])

	// the configured map is left untouched
	assert.Len(t, settings.MapOptions, 3)
	assert.Equal(t, 0, settings.MapOptions["latitude"])
}
