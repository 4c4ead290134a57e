package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "survivability"

// Metrics holds the Prometheus counters, histograms, and gauges for the service.
type Metrics struct {
	// Map requests.
	Requests        *prometheus.CounterVec // labels: outcome={ok,invalid,not_found,unprocessable,error}
	RequestDuration prometheus.Histogram
	CountriesScored prometheus.Histogram
	UnmatchedNames  *prometheus.CounterVec // labels: source={climate,geometry}

	// Snapshot publishing.
	SnapshotsPublished prometheus.Counter
	SnapshotErrors     prometheus.Counter
	SnapshotsDropped   prometheus.Counter
	SnapshotBatchSize  prometheus.Histogram
	PublisherRunning   prometheus.Gauge

	// Geocoding metrics.
	GeocodeRequests    *prometheus.CounterVec // labels: outcome={success,error,empty}
	GeocodeCache       *prometheus.CounterVec // labels: result={hit,miss}
	GeocodeAPIDuration prometheus.Histogram
	GeocodeEnabled     prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Requests,
		m.RequestDuration,
		m.CountriesScored,
		m.UnmatchedNames,
		m.SnapshotsPublished,
		m.SnapshotErrors,
		m.SnapshotsDropped,
		m.SnapshotBatchSize,
		m.PublisherRunning,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeAPIDuration,
		m.GeocodeEnabled,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "map_requests_total",
			Help:      "Map requests by outcome.",
		}, []string{"outcome"}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "map_request_duration_seconds",
			Help:      "Duration of a complete validate-score-render cycle.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		CountriesScored: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "countries_scored",
			Help:      "Number of distinct countries scored per request.",
			Buckets:   []float64{0, 10, 25, 50, 100, 150, 200, 250},
		}),
		UnmatchedNames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unmatched_names_total",
			Help:      "Country names that failed to reconcile, by source table.",
		}, []string{"source"}),
		SnapshotsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshots_published_total",
			Help:      "Total snapshots written to the snapshot sink.",
		}),
		SnapshotErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_errors_total",
			Help:      "Total failed snapshot batch writes.",
		}),
		SnapshotsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshots_dropped_total",
			Help:      "Snapshots discarded because the publish queue was full.",
		}),
		SnapshotBatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "snapshot_batch_size",
			Help:      "Number of snapshots per published batch.",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
		}),
		PublisherRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "publisher_running",
			Help:      "1 when the snapshot publisher is active, 0 when shut down.",
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      "Geocoding API requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
		GeocodeAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "geocode_api_duration_seconds",
			Help:      "Mapbox API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		GeocodeEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "geocode_enabled",
			Help:      "1 when origin-marker geocoding is enabled, 0 otherwise.",
		}),
	}
}
