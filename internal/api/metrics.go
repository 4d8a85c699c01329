package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	outcomeOK          = "ok"
	outcomeNotModified = "not_modified"
	outcomeInvalid     = "invalid"
	outcomeError       = "error"
)

// Metrics holds the collectors for skyline computations on a private registry.
type Metrics struct {
	registry     *prometheus.Registry
	computations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	buildings    prometheus.Histogram
	keyPoints    prometheus.Histogram
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "skyline_computations_total",
			Help: "Skyline computations by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "skyline_computation_duration_seconds",
			Help:    "Time spent parsing and sweeping one request.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"endpoint"}),
		buildings: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "skyline_buildings_per_set",
			Help:    "Buildings in each computed set.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		keyPoints: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "skyline_key_points_per_set",
			Help:    "Key points emitted for each computed set.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}

	m.registry.MustRegister(
		m.computations, m.duration, m.buildings, m.keyPoints,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) observe(endpoint, outcome string, elapsed time.Duration) {
	m.computations.WithLabelValues(endpoint, outcome).Inc()
	m.duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func (m *Metrics) observeSet(buildings, keyPoints int) {
	m.buildings.Observe(float64(buildings))
	m.keyPoints.Observe(float64(keyPoints))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
