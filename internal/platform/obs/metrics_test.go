package obs

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsObserve(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveWidgetRender("google", false, nil)
	m.ObserveWidgetRender("google", false, nil)
	m.ObserveWidgetRender("google", true, errors.New("boom"))
	m.ObserveBackendResolve("yandex", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.WidgetRenders.WithLabelValues("google", "false", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WidgetRenders.WithLabelValues("google", "true", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BackendResolves.WithLabelValues("yandex", "ok")))
}

func TestNilMetricsObserve(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveWidgetRender("google", false, nil)
		m.ObserveBackendResolve("google", nil)
	})
}
