package forms

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasure-map-service/internal/adapters/backends"
	"treasure-map-service/internal/config"
	"treasure-map-service/internal/domain"
)

func newGoogle(t *testing.T, settings config.TreasureMap) *backends.Google {
	t.Helper()
	g, err := backends.NewGoogle(settings)
	require.NoError(t, err)
	return g
}

func TestMapOptionsJSON(t *testing.T) {
	g := newGoogle(t, config.TreasureMap{})

	s, err := MapOptionsJSON(g.MapOptions())
	require.NoError(t, err)
	assert.JSONEq(t, `{"latitude": 51.562519, "longitude": -1.603156, "zoom": 5}`, s)
}

func TestMapWidgetContext(t *testing.T) {
	w := NewMapWidget(newGoogle(t, config.TreasureMap{Size: []any{500, 300}}), NewTemplates(""))
	ll := domain.NewLatLongFromFloat(22.123456, 33.654321)

	ctx, err := w.Context("point", &ll)
	require.NoError(t, err)

	assert.Equal(t, "point", ctx.Name)
	assert.Equal(t, 500, ctx.Width)
	assert.Equal(t, 300, ctx.Height)
	assert.True(t, ctx.OnlyMap)
	require.Len(t, ctx.Widgets, 2)
	assert.Equal(t, SubWidget{Name: "point_0", ID: "id_point_0", Type: "hidden", Value: "22.123456"}, ctx.Widgets[0])
	assert.Equal(t, SubWidget{Name: "point_1", ID: "id_point_1", Type: "hidden", Value: "33.654321"}, ctx.Widgets[1])
	assert.JSONEq(t, `{"latitude": 51.562519, "longitude": -1.603156, "zoom": 5}`, string(ctx.MapOptions))
}

func TestMapWidgetContextNumberInputs(t *testing.T) {
	onlyMap := false
	w := NewMapWidget(newGoogle(t, config.TreasureMap{OnlyMap: &onlyMap}), NewTemplates(""))

	ctx, err := w.Context("point", nil)
	require.NoError(t, err)

	assert.False(t, ctx.OnlyMap)
	for _, sw := range ctx.Widgets {
		assert.Equal(t, "number", sw.Type)
		assert.Empty(t, sw.Value)
	}
}

func TestAdminMapWidgetUsesAdminSize(t *testing.T) {
	settings := config.TreasureMap{Size: []any{500, 300}, AdminSize: []any{800, 600}}
	w := NewAdminMapWidget(newGoogle(t, settings), NewTemplates(""))

	ctx, err := w.Context("point", nil)
	require.NoError(t, err)

	assert.Equal(t, 800, ctx.Width)
	assert.Equal(t, 600, ctx.Height)
}

func TestMapWidgetRender(t *testing.T) {
	w := NewMapWidget(newGoogle(t, config.TreasureMap{}), NewTemplates(""))
	ll := domain.NewLatLongFromFloat(22.123456, 33.654321)

	var sb strings.Builder
	require.NoError(t, w.Render(&sb, "point", &ll))

	html := sb.String()
	assert.Contains(t, html, `class="treasure-map"`)
	assert.Contains(t, html, `<input type="hidden" name="point_0" id="id_point_0" value="22.123456">`)
	assert.Contains(t, html, `<input type="hidden" name="point_1" id="id_point_1" value="33.654321">`)
	assert.Contains(t, html, `<script type="application/json">{"latitude":51.562519,"longitude":-1.603156,"zoom":5}</script>`)
	assert.Contains(t, html, "width: 400px")
}

func TestMapWidgetRenderCustomTemplate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "template"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "template", "custom.html"),
		[]byte(`<p>{{.Name}} {{.Width}}x{{.Height}}</p>`),
		0o600,
	))

	g := newGoogle(t, config.TreasureMap{WidgetTemplate: "template/custom.html"})
	w := NewMapWidget(g, NewTemplates(dir))

	var sb strings.Builder
	require.NoError(t, w.Render(&sb, "point", nil))
	assert.Equal(t, "<p>point 400x400</p>", sb.String())
}

func TestMapWidgetRenderMissingTemplate(t *testing.T) {
	g := newGoogle(t, config.TreasureMap{WidgetTemplate: "nope.html"})
	w := NewMapWidget(g, NewTemplates(""))

	var sb strings.Builder
	err := w.Render(&sb, "point", nil)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, sb.String())
}

func TestMapWidgetMedia(t *testing.T) {
	w := NewMapWidget(newGoogle(t, config.TreasureMap{APIKey: "random_string"}), NewTemplates(""))

	media, err := w.Media()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"//maps.googleapis.com/maps/api/js?v=3.exp&key=random_string",
		"/static/treasuremap/default/js/jquery.treasuremap-google.js",
	}, media)
}

func TestStaticFSHasProviderScripts(t *testing.T) {
	for _, name := range []string{backends.GoogleName, backends.YandexName} {
		_, err := fs.Stat(StaticFS(), "treasuremap/default/js/jquery.treasuremap-"+name+".js")
		assert.NoError(t, err, name)
	}
}
