package forms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"path"

	"treasure-map-service/internal/domain"
	"treasure-map-service/internal/ports"
)

// StaticURL prefixes backend script paths when rendering media.
const StaticURL = "/static/"

// SubWidget is one of the two rendered inputs.
type SubWidget struct {
	Name  string
	ID    string
	Type  string
	Value string
}

// WidgetContext is the data handed to the widget template.
type WidgetContext struct {
	Name       string
	ID         string
	Widgets    []SubWidget
	MapOptions template.JS
	Width      int
	Height     int
	OnlyMap    bool
}

// MapWidget renders the map picker for a point field.
type MapWidget struct {
	provider  ports.MapProvider
	templates *Templates
	admin     bool
}

func NewMapWidget(provider ports.MapProvider, templates *Templates) *MapWidget {
	return &MapWidget{provider: provider, templates: templates}
}

// NewAdminMapWidget renders with the ADMIN_SIZE dimensions.
func NewAdminMapWidget(provider ports.MapProvider, templates *Templates) *MapWidget {
	return &MapWidget{provider: provider, templates: templates, admin: true}
}

// MapOptionsJSON serializes the provider's map options for the client script.
func MapOptionsJSON(opts ports.MapOptions) (string, error) {
	b, err := json.Marshal(opts)
	if err != nil {
		return "", fmt.Errorf("marshal map options: %w", err)
	}
	return string(b), nil
}

func (w *MapWidget) Context(name string, value *domain.LatLong) (WidgetContext, error) {
	opts, err := MapOptionsJSON(w.provider.MapOptions())
	if err != nil {
		return WidgetContext{}, err
	}

	inputType := "number"
	if w.provider.OnlyMap() {
		inputType = "hidden"
	}

	lat, lon := SplitNullable(value)
	latName, lonName := SubInputNames(name)

	width, height := w.provider.Size()
	if w.admin {
		width, height = w.provider.AdminSize()
	}

	return WidgetContext{
		Name: name,
		ID:   "id_" + name,
		Widgets: []SubWidget{
			{Name: latName, ID: "id_" + latName, Type: inputType, Value: lat},
			{Name: lonName, ID: "id_" + lonName, Type: inputType, Value: lon},
		},
		MapOptions: template.JS(opts),
		Width:      width,
		Height:     height,
		OnlyMap:    w.provider.OnlyMap(),
	}, nil
}

// Render writes the widget HTML using the provider's widget template.
func (w *MapWidget) Render(out io.Writer, name string, value *domain.LatLong) error {
	ctx, err := w.Context(name, value)
	if err != nil {
		return fmt.Errorf("render map widget %q: %w", name, err)
	}

	tmpl, err := w.templates.Lookup(w.provider.WidgetTemplate())
	if err != nil {
		return fmt.Errorf("render map widget %q: %w", name, err)
	}

	// out receives nothing when execution fails.
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return fmt.Errorf("render map widget %q: execute: %w", name, err)
	}

	_, err = buf.WriteTo(out)
	return err
}

// Media lists the scripts the widget needs: the provider API first, then
// the integration script.
func (w *MapWidget) Media() ([]string, error) {
	api, err := w.provider.APIJS()
	if err != nil {
		return nil, fmt.Errorf("map widget media: %w", err)
	}

	js, err := w.provider.JS()
	if err != nil {
		return nil, fmt.Errorf("map widget media: %w", err)
	}

	return []string{api, path.Join(StaticURL, js)}, nil
}
