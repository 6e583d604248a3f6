package services

import (
	"fmt"

	"treasure-map-service/internal/forms"
	"treasure-map-service/internal/ports"
)

type BackendDescription struct {
	Name           string
	APIURL         string
	APIJS          string
	JS             string
	WidgetTemplate string
	OnlyMap        bool
	Width, Height  int
	AdminWidth     int
	AdminHeight    int
	MapOptions     ports.MapOptions
}

// DescribeBackend reports what the widget will load and render for the
// active backend.
func DescribeBackend(backend ports.Backend) (BackendDescription, error) {
	mp, ok := backend.(ports.MapProvider)
	if !ok {
		return BackendDescription{}, fmt.Errorf("describe backend %q: not a map provider", backend.Name())
	}

	apiJS, err := mp.APIJS()
	if err != nil {
		return BackendDescription{}, fmt.Errorf("describe backend: %w", err)
	}
	js, err := mp.JS()
	if err != nil {
		return BackendDescription{}, fmt.Errorf("describe backend: %w", err)
	}

	w, h := mp.Size()
	aw, ah := mp.AdminSize()

	return BackendDescription{
		Name:           mp.Name(),
		APIURL:         mp.APIURL(),
		APIJS:          apiJS,
		JS:             forms.StaticURL + js,
		WidgetTemplate: mp.WidgetTemplate(),
		OnlyMap:        mp.OnlyMap(),
		Width:          w,
		Height:         h,
		AdminWidth:     aw,
		AdminHeight:    ah,
		MapOptions:     mp.MapOptions(),
	}, nil
}
