// Package metrics exposes Prometheus collectors for settings operations.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation results used as the "result" label.
const (
	ResultOK                 = "ok"
	ResultNotFound           = "not_found"
	ResultPreconditionFailed = "precondition_failed"
	ResultInvalid            = "invalid"
	ResultError              = "error"
)

type Metrics struct {
	registry *prometheus.Registry

	OperationsTotal      *prometheus.CounterVec
	ProfilesLive         prometheus.Gauge
	GlobalActive         prometheus.Gauge
	EventsPublishedTotal *prometheus.CounterVec
}

// New creates the collectors on a private registry together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		OperationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ember_settings_operations_total",
			Help: "Total number of settings store operations by operation and result.",
		}, []string{"operation", "result"}),
		ProfilesLive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ember_profiles",
			Help: "Number of profiles currently stored.",
		}),
		GlobalActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ember_global_active",
			Help: "Process-wide active flag (1 active, 0 paused).",
		}),
		EventsPublishedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ember_events_published_total",
			Help: "Total number of settings events handed to the event bus by type and result.",
		}, []string{"event_type", "result"}),
	}

	reg.MustRegister(
		m.OperationsTotal,
		m.ProfilesLive,
		m.GlobalActive,
		m.EventsPublishedTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) ObserveOperation(operation, result string) {
	m.OperationsTotal.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) ObserveEvent(eventType string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}

	m.EventsPublishedTotal.WithLabelValues(eventType, result).Inc()
}

func (m *Metrics) SetProfiles(n int) {
	m.ProfilesLive.Set(float64(n))
}

func (m *Metrics) SetGlobalActive(active bool) {
	if active {
		m.GlobalActive.Set(1)

		return
	}

	m.GlobalActive.Set(0)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
