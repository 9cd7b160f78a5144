package geoindex

import (
	"context"
	"fmt"
)

// IndexStats describes the current contents of a geo index.
type IndexStats struct {
	Key     string   `json:"key"`
	Members int64    `json:"members"`
	Sample  []string `json:"sample"`
}

// Inspector reports on the contents of a geo index.
type Inspector struct {
	store Store
	cfg   Config
}

// NewInspector creates an Inspector.
func NewInspector(store Store, cfg Config) *Inspector {
	return &Inspector{store: store, cfg: cfg.withDefaults()}
}

// Stats returns the member count of indexKey and up to sample member ids in
// index order. Unlike Search, store errors are returned.
func (i *Inspector) Stats(ctx context.Context, indexKey string, sample int) (*IndexStats, error) {
	if indexKey == "" {
		indexKey = i.cfg.IndexKey
	}

	members, err := i.store.ZCard(ctx, indexKey)
	if err != nil {
		return nil, fmt.Errorf("failed to count members of %s: %w", indexKey, err)
	}

	stats := &IndexStats{Key: indexKey, Members: members, Sample: []string{}}
	if sample <= 0 || members == 0 {
		return stats, nil
	}

	ids, err := i.store.ZRange(ctx, indexKey, 0, int64(sample)-1)
	if err != nil {
		return nil, fmt.Errorf("failed to sample members of %s: %w", indexKey, err)
	}
	stats.Sample = ids
	return stats, nil
}
