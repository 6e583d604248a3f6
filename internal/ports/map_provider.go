package ports

// Minimal contract every registered backend factory yields.
type Backend interface {
	// Return the provider short name used for client script lookup.
	Name() string
}

// Options passed to the client-side map, serialized into the widget.
type MapOptions map[string]any

// Full capability set a backend must implement to drive the map widget.
type MapProvider interface {
	Backend
	// Return the base URL of the provider's JavaScript API.
	APIURL() string
	// Return the configured API key, empty when unset.
	APIKey() string
	// Return the script URL loading the provider API with its query parameters.
	APIJS() (string, error)
	// Return the static path of the client integration script.
	JS() (string, error)
	WidgetTemplate() string
	OnlyMap() bool
	Size() (width, height int)
	AdminSize() (width, height int)
	MapOptions() MapOptions
}
