package backends

import (
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"treasure-map-service/internal/config"
	"treasure-map-service/internal/domain"
	"treasure-map-service/internal/ports"
)

const (
	GoogleBackendID = "treasuremap.backends.google.GoogleMapBackend"
	YandexBackendID = "treasuremap.backends.yandex.YandexMapBackend"
	BaseBackendID   = "treasuremap.backends.base.BaseMapBackend"

	// DefaultBackend is used when BACKEND is not configured.
	DefaultBackend = GoogleBackendID
)

// Factory builds a backend from the map settings.
type Factory func(settings config.TreasureMap) (ports.Backend, error)

// Registry maps backend identifiers to factories. Exactly one backend is
// resolved per settings load; there is no discovery beyond what is registered.
type Registry struct {
	factories map[string]Factory
}

func NewEmptyRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// NewRegistry returns a registry with the built-in providers under their
// dotted ids and short names.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	r.Register(GoogleBackendID, func(s config.TreasureMap) (ports.Backend, error) {
		return NewGoogle(s)
	}, GoogleName)
	r.Register(YandexBackendID, func(s config.TreasureMap) (ports.Backend, error) {
		return NewYandex(s)
	}, YandexName)
	return r
}

// Register adds f under id and any aliases, replacing earlier entries.
func (r *Registry) Register(id string, f Factory, aliases ...string) {
	for _, key := range append([]string{id}, aliases...) {
		r.factories[strings.TrimSpace(key)] = f
	}
}

// IDs lists registered identifiers in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// BackendID returns the identifier Resolve looks up for settings.
func BackendID(settings config.TreasureMap) string {
	if id := strings.TrimSpace(settings.Backend); id != "" {
		return id
	}
	return DefaultBackend
}

// Resolve builds the configured map provider.
//
// An unset BACKEND selects DefaultBackend. Unknown identifiers fail with
// domain.ErrLoad; a backend lacking the MapProvider capability set, or one
// whose construction rejects the settings, fails with domain.ErrConfig.
func (r *Registry) Resolve(settings config.TreasureMap) (ports.MapProvider, error) {
	id := BackendID(settings)

	factory, ok := r.factories[id]
	if !ok {
		return nil, domain.NewErrorf(domain.ErrLoad, "map backend %q is not registered", id)
	}

	backend, err := factory(settings)
	if err != nil {
		return nil, domain.WrapErrorf(err, domain.ErrConfig, "build map backend %q", id)
	}

	provider, ok := backend.(ports.MapProvider)
	if !ok {
		return nil, domain.NewErrorf(domain.ErrConfig, "backend %q (%T) is not an instance of base backend", id, backend)
	}

	log.WithFields(log.Fields{
		"backend": id,
		"name":    provider.Name(),
	}).Debug("map backend resolved")

	return provider, nil
}
