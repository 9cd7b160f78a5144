package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/Aleph-Alpha/geoloc/v1/observability"
)

// ErrPushDisabled is returned by Push when no Pushgateway URL is configured.
var ErrPushDisabled = errors.New("metrics: pushgateway url not configured")

// ObserveOperation implements observability.Observer for store clients.
func (m *Metrics) ObserveOperation(op observability.OperationContext) {
	status := "ok"
	if op.Error != nil {
		status = "error"
	}
	m.storeOperations.WithLabelValues(op.Component, op.Operation, status).Inc()
	m.storeDuration.WithLabelValues(op.Component, op.Operation).Observe(op.Duration.Seconds())
}

// RecordImported adds n successfully indexed members.
func (m *Metrics) RecordImported(index string, n int64) {
	if n <= 0 {
		return
	}
	m.recordsImported.WithLabelValues(index).Add(float64(n))
}

// RecordSkipped counts one skipped record.
func (m *Metrics) RecordSkipped(index, reason string) {
	m.recordsSkipped.WithLabelValues(index, reason).Inc()
}

// RecordBatchFailure counts one failed batch.
func (m *Metrics) RecordBatchFailure(index, reason string) {
	m.batchFailures.WithLabelValues(index, reason).Inc()
}

// ObserveImportDuration records the duration of an import run.
// Example: defer m.ObserveImportDuration("all_locations", time.Now())
func (m *Metrics) ObserveImportDuration(index string, start time.Time) {
	m.importDuration.WithLabelValues(index).Observe(time.Since(start).Seconds())
}

// ObserveSearch records one proximity search.
func (m *Metrics) ObserveSearch(index string, start time.Time, results int) {
	m.searchDuration.WithLabelValues(index).Observe(time.Since(start).Seconds())
	m.searchResults.WithLabelValues(index).Observe(float64(results))
}

// Push sends every registered metric to the configured Pushgateway,
// replacing the previous push for the same job.
func (m *Metrics) Push(ctx context.Context) error {
	if m.cfg.PushgatewayURL == "" {
		return ErrPushDisabled
	}

	if err := push.New(m.cfg.PushgatewayURL, m.cfg.Job).Gatherer(m.Registry).PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics: %w", err)
	}
	return nil
}
