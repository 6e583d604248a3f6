package backends

import (
	"fmt"
	"maps"
	"math"
	"strconv"
	"strings"

	"treasure-map-service/internal/config"
	"treasure-map-service/internal/domain"
	"treasure-map-service/internal/ports"
)

const (
	DefaultWidgetTemplate = "treasuremap/widgets/map.html"
	DefaultWidth          = 400
	DefaultHeight         = 400

	DefaultLatitude  = 51.562519
	DefaultLongitude = -1.603156
	DefaultZoom      = 5
)

// Base holds the settings shared by every map provider. It satisfies
// ports.Backend but not ports.MapProvider: concrete providers embed it and
// add APIJS.
type Base struct {
	name     string
	apiURL   string
	settings config.TreasureMap

	width, height           int
	adminWidth, adminHeight int
}

// NewBase builds the abstract backend. Sizes are validated eagerly.
func NewBase(settings config.TreasureMap) (*Base, error) {
	b, err := newBase("", "", settings)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func newBase(name, apiURL string, settings config.TreasureMap) (Base, error) {
	b := Base{name: name, apiURL: apiURL, settings: settings}

	var err error
	b.width, b.height, err = parseSize(settings.Size)
	if err != nil {
		return Base{}, domain.WrapErrorf(err, domain.ErrConfig, "invalid SIZE parameter, use: (width, height)")
	}

	b.adminWidth, b.adminHeight, err = parseSize(settings.AdminSize)
	if err != nil {
		return Base{}, domain.WrapErrorf(err, domain.ErrConfig, "invalid ADMIN_SIZE parameter, use: (width, height)")
	}

	return b, nil
}

// parseSize destructures a (width, height) tuple. A nil tuple means unset.
func parseSize(raw []any) (int, int, error) {
	if raw == nil {
		return DefaultWidth, DefaultHeight, nil
	}

	if len(raw) != 2 {
		return 0, 0, fmt.Errorf("expected 2 values, got %d", len(raw))
	}

	w, err := toInt(raw[0])
	if err != nil {
		return 0, 0, fmt.Errorf("width: %w", err)
	}
	h, err := toInt(raw[1])
	if err != nil {
		return 0, 0, fmt.Errorf("height: %w", err)
	}

	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size must be positive, got %dx%d", w, h)
	}

	return w, h, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("%v is not a finite number", n)
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("%v (%T) is not an integer", v, v)
	}
}

func (b *Base) Name() string { return b.name }

func (b *Base) APIURL() string { return b.apiURL }

func (b *Base) APIKey() string { return b.settings.APIKey }

// JS returns the client integration script for the provider.
func (b *Base) JS() (string, error) {
	if b.name == "" {
		return "", domain.NewErrorf(domain.ErrConfig, "abstract map backend has no client script")
	}
	return fmt.Sprintf("treasuremap/default/js/jquery.treasuremap-%s.js", b.name), nil
}

func (b *Base) WidgetTemplate() string {
	if b.settings.WidgetTemplate == "" {
		return DefaultWidgetTemplate
	}
	return b.settings.WidgetTemplate
}

func (b *Base) OnlyMap() bool {
	if b.settings.OnlyMap == nil {
		return true
	}
	return *b.settings.OnlyMap
}

func (b *Base) Size() (int, int) { return b.width, b.height }

func (b *Base) AdminSize() (int, int) { return b.adminWidth, b.adminHeight }

// MapOptions returns a copy of the configured options with latitude,
// longitude and zoom filled in independently when missing or zero.
func (b *Base) MapOptions() ports.MapOptions {
	opts := make(ports.MapOptions, len(b.settings.MapOptions)+3)
	maps.Copy(opts, b.settings.MapOptions)

	if isBlank(opts["latitude"]) {
		opts["latitude"] = DefaultLatitude
	}
	if isBlank(opts["longitude"]) {
		opts["longitude"] = DefaultLongitude
	}
	if isBlank(opts["zoom"]) {
		opts["zoom"] = DefaultZoom
	}

	return opts
}

func isBlank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case int:
		return x == 0
	case int64:
		return x == 0
	case float64:
		return x == 0
	case string:
		return x == ""
	case bool:
		return !x
	default:
		return false
	}
}
