package geoindex

import (
	"context"
	"fmt"

	"github.com/Aleph-Alpha/geoloc/v1/location"
	"github.com/Aleph-Alpha/geoloc/v1/logger"
)

// Pipeline loads an input, repairs and sanitizes its records and imports
// them into a geo index.
type Pipeline struct {
	loader   RecordLoader
	importer *Importer
	logger   Logger
}

// NewPipeline creates a Pipeline. log may be nil.
func NewPipeline(loader RecordLoader, importer *Importer, log Logger) *Pipeline {
	if log == nil {
		log = logger.NewNop()
	}
	return &Pipeline{loader: loader, importer: importer, logger: log}
}

// Run performs a full reindex of indexKey from the input at loc. A load or
// parse failure aborts the run before the index is touched.
func (p *Pipeline) Run(ctx context.Context, indexKey, loc string) (*ImportResult, error) {
	raw, err := p.loader.Load(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to load input: %w", err)
	}

	repaired, stats := location.Repair(raw)
	p.logger.Info("Repaired records", nil, map[string]interface{}{
		"input":                stats.Input,
		"output":               stats.Output,
		"fragments_consumed":   stats.FragmentsConsumed,
		"fragments_discarded":  stats.FragmentsDiscarded,
		"continuations_merged": stats.ContinuationsMerged,
		"orphans_dropped":      stats.OrphansDropped,
	})

	sanitized := location.SanitizeAll(repaired)

	return p.importer.Import(ctx, indexKey, sanitized)
}
