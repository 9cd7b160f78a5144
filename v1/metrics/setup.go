package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics encapsulates the Prometheus registry and the collectors used by geoloc.
//
// Each instance owns an isolated registry so tests and embedded use do not
// collide with the global default registry.
type Metrics struct {
	// Registry is the Prometheus registry where all metrics are registered.
	Registry *prometheus.Registry

	cfg Config

	storeOperations *prometheus.CounterVec
	storeDuration   *prometheus.HistogramVec
	recordsImported *prometheus.CounterVec
	recordsSkipped  *prometheus.CounterVec
	batchFailures   *prometheus.CounterVec
	importDuration  *prometheus.HistogramVec
	searchDuration  *prometheus.HistogramVec
	searchResults   *prometheus.HistogramVec
}

// NewMetrics initializes a Metrics instance with a dedicated registry.
// Every metric carries a constant service="<cfg.ServiceName>" label.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "geoloc"})
//	redisClient.WithObserver(m)
func NewMetrics(cfg Config) *Metrics {
	if cfg.Job == "" {
		cfg.Job = DefaultJob
	}

	registry := prometheus.NewRegistry()
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
		cfg:      cfg,
	}

	m.storeOperations = createCounterVec("store_operations_total", "Store commands issued, by component, operation and status", []string{"component", "operation", "status"})
	m.storeDuration = createHistogramVec("store_operation_duration_seconds", "Store command latency in seconds", []string{"component", "operation"}, prometheus.DefBuckets)
	m.recordsImported = createCounterVec("geoindex_members_added_total", "Members added to a geospatial index", []string{"index"})
	m.recordsSkipped = createCounterVec("geoindex_records_skipped_total", "Records skipped during import", []string{"index", "reason"})
	m.batchFailures = createCounterVec("geoindex_batch_failures_total", "Import batches whose index write failed or was aborted", []string{"index", "reason"})
	m.importDuration = createHistogramVec("geoindex_import_duration_seconds", "Duration of full reindex runs in seconds", []string{"index"}, prometheus.ExponentialBuckets(0.1, 2, 12))
	m.searchDuration = createHistogramVec("geoindex_search_duration_seconds", "Proximity search latency in seconds", []string{"index"}, prometheus.DefBuckets)
	m.searchResults = createHistogramVec("geoindex_search_results", "Results returned per proximity search", []string{"index"}, []float64{0, 1, 2, 5, 10, 25, 50, 100})

	wrappedRegistry.MustRegister(
		m.storeOperations,
		m.storeDuration,
		m.recordsImported,
		m.recordsSkipped,
		m.batchFailures,
		m.importDuration,
		m.searchDuration,
		m.searchResults,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return m
}

func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}
