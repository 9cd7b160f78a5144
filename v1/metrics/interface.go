package metrics

import (
	"context"
	"time"

	"github.com/Aleph-Alpha/geoloc/v1/observability"
)

// MetricsCollector is the set of recording methods used by the geoloc components.
//
// This interface is implemented by the concrete *Metrics type.
type MetricsCollector interface {
	observability.Observer

	// RecordImported adds n successfully indexed members for an index key.
	RecordImported(index string, n int64)

	// RecordSkipped counts one record skipped during import, labelled by reason.
	RecordSkipped(index, reason string)

	// RecordBatchFailure counts one batch whose index write did not happen.
	RecordBatchFailure(index, reason string)

	// ObserveImportDuration records the duration of a full import run.
	ObserveImportDuration(index string, start time.Time)

	// ObserveSearch records the duration and result count of one proximity search.
	ObserveSearch(index string, start time.Time, results int)

	// Push sends the registry to the configured Pushgateway.
	Push(ctx context.Context) error
}
