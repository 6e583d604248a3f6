package obs

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's prometheus collectors.
type Metrics struct {
	WidgetRenders      *prometheus.CounterVec
	BackendResolves    *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	DurationSummary    prometheus.Summary
	ResponseStatusCode *prometheus.CounterVec
	TotalRequests      *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		WidgetRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "treasuremap",
			Name:      "widget_render_count",
			Help:      "The total number of map widget renders",
		}, []string{"backend", "admin", "result"}),
		BackendResolves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "treasuremap",
			Name:      "backend_resolve_count",
			Help:      "The total number of map backend resolutions",
		}, []string{"backend", "result"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "treasuremap",
			Name:      "request_duration_seconds",
			Help:      "The duration of request",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		}, []string{"method", "path"}),
		DurationSummary: prometheus.NewSummary(prometheus.SummaryOpts{
			Namespace:  "treasuremap",
			Name:       "request_duration_summary_seconds",
			Help:       "The duration of request",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}),
		ResponseStatusCode: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "treasuremap",
			Name:      "response_status_code",
			Help:      "The status code of http response",
		}, []string{"status", "method", "path"}),
		TotalRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "treasuremap",
			Name:      "total_requests",
			Help:      "The total number of requests",
		}, []string{"path", "method", "status"}),
	}
	reg.MustRegister(m.WidgetRenders, m.BackendResolves, m.HTTPDuration, m.DurationSummary, m.ResponseStatusCode, m.TotalRequests)
	return m
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveWidgetRender is safe to call on a nil *Metrics.
func (m *Metrics) ObserveWidgetRender(backend string, admin bool, err error) {
	if m == nil {
		return
	}
	m.WidgetRenders.WithLabelValues(backend, strconv.FormatBool(admin), result(err)).Inc()
}

// ObserveBackendResolve is safe to call on a nil *Metrics.
func (m *Metrics) ObserveBackendResolve(backend string, err error) {
	if m == nil {
		return
	}
	m.BackendResolves.WithLabelValues(backend, result(err)).Inc()
}
