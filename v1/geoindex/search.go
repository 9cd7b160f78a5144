package geoindex

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/Aleph-Alpha/geoloc/v1/logger"
	"github.com/Aleph-Alpha/geoloc/v1/redis"
	"github.com/Aleph-Alpha/geoloc/v1/tracer"
)

// Query describes a proximity search around a point.
type Query struct {
	Longitude float64
	Latitude  float64

	// RadiusKm defaults to DefaultSearchRadiusKm when not positive.
	RadiusKm float64

	// Limit defaults to DefaultSearchLimit when not positive.
	Limit int
}

// SearchResult is an attribute record found by a search, with its distance
// from the query point.
type SearchResult struct {
	ID          string            `json:"id"`
	DisplayName string            `json:"display_name"`
	DistanceKm  float64           `json:"distance_km"`
	Fields      map[string]string `json:"fields"`
}

// Searcher runs proximity searches against a geo index.
type Searcher struct {
	store    Store
	logger   Logger
	recorder Recorder
	cfg      Config
}

// NewSearcher creates a Searcher. log and recorder may be nil.
func NewSearcher(store Store, log Logger, recorder Recorder, cfg Config) *Searcher {
	if log == nil {
		log = logger.NewNop()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Searcher{store: store, logger: log, recorder: recorder, cfg: cfg.withDefaults()}
}

// Search returns up to q.Limit indexed locations within q.RadiusKm of the
// query point, nearest first. Members without an attribute record are left
// out. Store errors are logged and yield an empty result; Search never fails.
func (s *Searcher) Search(ctx context.Context, indexKey string, q Query) []SearchResult {
	if indexKey == "" {
		indexKey = s.cfg.IndexKey
	}
	if q.Limit <= 0 {
		q.Limit = DefaultSearchLimit
	}
	if q.RadiusKm <= 0 {
		q.RadiusKm = DefaultSearchRadiusKm
	}

	start := time.Now()
	ctx, span := otelTracer.Start(ctx, "geoindex.Search", trace.WithAttributes(
		attribute.String("geoloc.index", indexKey),
		attribute.Float64("geoloc.longitude", q.Longitude),
		attribute.Float64("geoloc.latitude", q.Latitude),
		attribute.Float64("geoloc.radius_km", q.RadiusKm),
		attribute.Int("geoloc.limit", q.Limit),
	))
	defer span.End()

	results, err := s.search(ctx, indexKey, q)
	if err != nil {
		tracer.RecordErrorOnSpan(span, err)
		s.logger.Error("Proximity search failed", err, map[string]interface{}{
			"index":     indexKey,
			"longitude": q.Longitude,
			"latitude":  q.Latitude,
			"radius_km": q.RadiusKm,
			"limit":     q.Limit,
		})
		results = []SearchResult{}
	}

	s.recorder.ObserveSearch(indexKey, start, len(results))
	span.SetAttributes(attribute.Int("geoloc.results", len(results)))
	return results
}

func (s *Searcher) search(ctx context.Context, indexKey string, q Query) ([]SearchResult, error) {
	members, err := s.store.GeoSearchLocation(ctx, indexKey, &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Longitude:  q.Longitude,
			Latitude:   q.Latitude,
			Radius:     q.RadiusKm,
			RadiusUnit: "km",
			Sort:       "ASC",
			Count:      q.Limit,
		},
		WithDist: true,
	})
	if err != nil {
		return nil, fmt.Errorf("geo search on %s: %w", indexKey, err)
	}

	found := make([]map[string]string, len(members))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.SearchConcurrency)
	for i, m := range members {
		g.Go(func() error {
			attrs, err := s.store.HGetAll(gctx, AttributeKey(indexKey, m.Name))
			if err != nil {
				return fmt.Errorf("fetch attributes of %s: %w", m.Name, err)
			}
			found[i] = attrs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(members))
	for i, m := range members {
		attrs := found[i]
		if len(attrs) == 0 {
			continue
		}
		attrs[FieldDistanceKm] = fmt.Sprintf("%.2f", m.Dist)
		results = append(results, SearchResult{
			ID:          attrs[FieldID],
			DisplayName: attrs[FieldDisplayName],
			DistanceKm:  math.Round(m.Dist*100) / 100,
			Fields:      attrs,
		})
	}
	return results, nil
}
