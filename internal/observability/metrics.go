package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// location resolution service.
type Metrics struct {
	// Geocoding metrics.
	GeocodeRequests      *prometheus.CounterVec // labels: outcome={success,empty,error}
	GeocodeCache         *prometheus.CounterVec // labels: result={hit,miss}
	GeocodeAPIDuration   prometheus.Histogram
	ThrottleWaitDuration prometheus.Histogram

	// Resolution metrics.
	Resolutions       *prometheus.CounterVec // labels: outcome={matched,address_only,empty}
	DictionaryEntries *prometheus.GaugeVec   // labels: level={country,city,district}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trio_location",
			Name:      "geocode_requests_total",
			Help:      "Reverse geocoding requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trio_location",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
		GeocodeAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "trio_location",
			Name:      "geocode_api_duration_seconds",
			Help:      "External reverse geocoding request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		ThrottleWaitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "trio_location",
			Name:      "geocode_throttle_wait_seconds",
			Help:      "Time callers spend waiting for a rate-limit slot.",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trio_location",
			Name:      "resolutions_total",
			Help:      "Location resolutions by outcome.",
		}, []string{"outcome"}),
		DictionaryEntries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "trio_location",
			Name:      "dictionary_entries",
			Help:      "Loaded geography dictionary entries by level.",
		}, []string{"level"}),
	}

	prometheus.MustRegister(
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeAPIDuration,
		m.ThrottleWaitDuration,
		m.Resolutions,
		m.DictionaryEntries,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		GeocodeRequests:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "trio_location", Name: "geocode_requests_total"}, []string{"outcome"}),
		GeocodeCache:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "trio_location", Name: "geocode_cache_total"}, []string{"result"}),
		GeocodeAPIDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "trio_location", Name: "geocode_api_duration_seconds"}),
		ThrottleWaitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "trio_location", Name: "geocode_throttle_wait_seconds"}),
		Resolutions:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "trio_location", Name: "resolutions_total"}, []string{"outcome"}),
		DictionaryEntries:    prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: "trio_location", Name: "dictionary_entries"}, []string{"level"}),
	}
}
