package forms

import (
	"fmt"
	"net/url"
	"strings"

	"treasure-map-service/internal/domain"
)

var (
	ErrRequired           = fmt.Errorf("%w: this field is required", domain.ErrParse)
	ErrInvalidCoordinates = fmt.Errorf("%w: enter a valid coordinate", domain.ErrParse)
)

// SplitForInput returns the two sub-input values for a point.
func SplitForInput(ll domain.LatLong) (string, string) {
	return ll.FormatLatitude(), ll.FormatLongitude()
}

// SplitNullable is SplitForInput for optional values; nil yields empty inputs.
func SplitNullable(ll *domain.LatLong) (string, string) {
	if ll == nil {
		return "", ""
	}
	return SplitForInput(*ll)
}

// MergeFromInput combines the latitude and longitude sub-inputs.
// Either part being empty is an invalid coordinate.
func MergeFromInput(latitude, longitude string) (domain.LatLong, error) {
	latitude = strings.TrimSpace(latitude)
	longitude = strings.TrimSpace(longitude)

	if latitude == "" || longitude == "" {
		return domain.LatLong{}, ErrInvalidCoordinates
	}

	ll, err := domain.NewLatLongFromStrings(latitude, longitude)
	if err != nil {
		return domain.LatLong{}, fmt.Errorf("merge latlong input: %w", err)
	}
	return ll, nil
}

// SubInputNames returns the names of the latitude and longitude inputs
// rendered for a field.
func SubInputNames(name string) (string, string) {
	return name + "_0", name + "_1"
}

// LatLongField reads a point from submitted form values.
type LatLongField struct {
	Name     string
	Required bool
}

// Clean returns nil when both inputs are blank on an optional field.
func (f LatLongField) Clean(values url.Values) (*domain.LatLong, error) {
	latName, lonName := SubInputNames(f.Name)
	lat := strings.TrimSpace(values.Get(latName))
	lon := strings.TrimSpace(values.Get(lonName))

	if lat == "" && lon == "" {
		if f.Required {
			return nil, fmt.Errorf("%s: %w", f.Name, ErrRequired)
		}
		return nil, nil
	}

	ll, err := MergeFromInput(lat, lon)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name, err)
	}
	return &ll, nil
}
