package backends

import (
	"treasure-map-service/internal/config"
)

const (
	GoogleName   = "google"
	GoogleAPIURL = "//maps.googleapis.com/maps/api/js"
)

// Google drives the widget with the Google Maps JavaScript API.
type Google struct {
	Base
}

func NewGoogle(settings config.TreasureMap) (*Google, error) {
	b, err := newBase(GoogleName, GoogleAPIURL, settings)
	if err != nil {
		return nil, err
	}
	return &Google{Base: b}, nil
}

func (g *Google) APIJS() (string, error) {
	q := query{}
	q.add("v", "3.exp")
	if key := g.APIKey(); key != "" {
		q.add("key", key)
	}

	return g.APIURL() + "?" + q.encode(), nil
}
