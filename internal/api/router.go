package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"treasure-map-service/internal/api/handlers"
	"treasure-map-service/internal/forms"
	"treasure-map-service/internal/platform/obs"
	"treasure-map-service/internal/ports"
)

type Deps struct {
	Provider  ports.MapProvider
	Places    ports.PlaceRepository
	Templates *forms.Templates
	Metrics   *obs.Metrics
	// Gatherer backs /metrics; the endpoint is not mounted when nil.
	Gatherer prometheus.Gatherer
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers stay unaware of concrete adapters.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)
	if d.Metrics != nil {
		r.Use(metricsMiddleware(d.Metrics))
	}

	backendHandler := &handlers.BackendHandler{Provider: d.Provider}
	widgetHandler := &handlers.WidgetHandler{
		Provider:  d.Provider,
		Templates: d.Templates,
		Metrics:   d.Metrics,
	}
	placeHandler := &handlers.PlaceHandler{
		Repo:      d.Places,
		Provider:  d.Provider,
		Templates: d.Templates,
		Metrics:   d.Metrics,
	}

	r.Get("/health", handlers.Health)
	r.Get("/backend", backendHandler.Describe)

	r.Route("/widget", func(r chi.Router) {
		r.Get("/", widgetHandler.Render)
		r.Get("/media", widgetHandler.Media)
	})

	r.Route("/places", func(r chi.Router) {
		r.Get("/", placeHandler.List)
		r.Post("/", placeHandler.Create)
		r.Get("/widgets", placeHandler.Widgets)
		r.Get("/{id}", placeHandler.Get)
	})

	r.Post("/latlong/normalize", handlers.NormalizeLatLong)

	r.Handle("/static/*", http.StripPrefix(forms.StaticURL, http.FileServer(http.FS(forms.StaticFS()))))

	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
