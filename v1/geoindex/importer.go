package geoindex

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/geoloc/v1/location"
	"github.com/Aleph-Alpha/geoloc/v1/logger"
	"github.com/Aleph-Alpha/geoloc/v1/redis"
	"github.com/Aleph-Alpha/geoloc/v1/tracer"
)

const instrumentationName = "github.com/Aleph-Alpha/geoloc/v1/geoindex"

var otelTracer = otel.Tracer(instrumentationName)

// Skip reasons reported to the Recorder.
const (
	SkipMissingCoordinates = "missing_coordinates"
	SkipInvalidCoordinates = "invalid_coordinates"
	SkipZeroCoordinates    = "zero_coordinates"
	SkipOutOfRange         = "out_of_range"
	SkipAttributeWrite     = "attribute_write_failed"
)

// ImportResult summarizes one import run.
type ImportResult struct {
	RunID    string `json:"run_id"`
	IndexKey string `json:"index_key"`

	// Processed counts every record seen.
	Processed int `json:"processed"`

	// Imported is the number of members the store reported as added.
	Imported int64 `json:"imported"`

	// Skipped counts records rejected before any write.
	Skipped int `json:"skipped"`

	Batches       int           `json:"batches"`
	FailedBatches int           `json:"failed_batches"`
	Duration      time.Duration `json:"duration"`
}

// Importer replaces the contents of a geo index with a set of records.
type Importer struct {
	store    Store
	logger   Logger
	recorder Recorder
	cfg      Config
}

// NewImporter creates an Importer. log and recorder may be nil.
func NewImporter(store Store, log Logger, recorder Recorder, cfg Config) *Importer {
	if log == nil {
		log = logger.NewNop()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Importer{store: store, logger: log, recorder: recorder, cfg: cfg.withDefaults()}
}

// batchState carries what one batch accumulates before its index write.
type batchState struct {
	number  int
	geoArgs []interface{}
	hashes  []redis.HashEntry
}

// Import clears indexKey and every {indexKey}:* attribute hash, then writes
// records in batches of Config.BatchSize.
//
// Records without two usable coordinates are skipped with a warning. Each
// accepted record gets the next id (loc:1, loc:2, ...) across the whole run.
// A batch whose index write fails is logged and counted, and the run goes on
// with the next batch. Only a failure to clear the index aborts the import.
func (im *Importer) Import(ctx context.Context, indexKey string, records []location.Record) (*ImportResult, error) {
	if indexKey == "" {
		indexKey = im.cfg.IndexKey
	}

	start := time.Now()
	result := &ImportResult{RunID: uuid.NewString(), IndexKey: indexKey}

	ctx, span := otelTracer.Start(ctx, "geoindex.Import", trace.WithAttributes(
		attribute.String("geoloc.index", indexKey),
		attribute.String("geoloc.run_id", result.RunID),
		attribute.Int("geoloc.records", len(records)),
	))
	defer span.End()

	fields := map[string]interface{}{
		"run_id":     result.RunID,
		"index":      indexKey,
		"records":    len(records),
		"batch_size": im.cfg.BatchSize,
		"write_mode": string(im.cfg.WriteMode),
	}
	im.logger.Info("Starting import", nil, fields)

	deleted, err := im.clear(ctx, indexKey)
	if err != nil {
		tracer.RecordErrorOnSpan(span, err)
		im.logger.Error("Failed to clear index", err, fields)
		return nil, fmt.Errorf("failed to clear index %s: %w", indexKey, err)
	}
	im.logger.Debug("Cleared index", nil, map[string]interface{}{"index": indexKey, "deleted_keys": deleted})

	var lastID int
	for offset := 0; offset < len(records); offset += im.cfg.BatchSize {
		end := min(offset+im.cfg.BatchSize, len(records))
		result.Batches++
		im.importBatch(ctx, indexKey, records[offset:end], result, &lastID)
	}

	result.Duration = time.Since(start)
	im.recorder.ObserveImportDuration(indexKey, start)

	tracer.SetAttributes(span, map[string]interface{}{
		"geoloc.imported":       result.Imported,
		"geoloc.skipped":        result.Skipped,
		"geoloc.failed_batches": result.FailedBatches,
	})
	im.logger.Info("Import finished", nil, fields, map[string]interface{}{
		"processed":      result.Processed,
		"imported":       result.Imported,
		"skipped":        result.Skipped,
		"batches":        result.Batches,
		"failed_batches": result.FailedBatches,
		"duration_ms":    result.Duration.Milliseconds(),
	})
	return result, nil
}

// clear deletes the GEO set and all of its attribute hashes.
func (im *Importer) clear(ctx context.Context, indexKey string) (int64, error) {
	keys, err := im.store.ScanKeys(ctx, redis.EscapeGlob(indexKey)+":*")
	if err != nil {
		return 0, err
	}
	keys = append([]string{indexKey}, keys...)

	var deleted int64
	for offset := 0; offset < len(keys); offset += deleteChunkSize {
		n, err := im.store.Delete(ctx, keys[offset:min(offset+deleteChunkSize, len(keys))]...)
		if err != nil {
			return deleted, err
		}
		deleted += n
	}
	return deleted, nil
}

func (im *Importer) importBatch(ctx context.Context, indexKey string, batch []location.Record, result *ImportResult, lastID *int) {
	state := &batchState{number: result.Batches}

	for _, rec := range batch {
		result.Processed++

		lon, lat, reason := im.coordinates(rec)
		if reason != "" {
			im.skip(indexKey, rec, reason, result, nil)
			continue
		}

		*lastID++
		id := MemberID(*lastID)
		attrs := BuildAttributes(rec, id)
		key := AttributeKey(indexKey, id)

		if im.cfg.WriteMode == WriteModeSequential {
			if _, err := im.store.HSet(ctx, key, hashArgs(attrs)...); err != nil {
				im.skip(indexKey, rec, SkipAttributeWrite, result, err)
				continue
			}
		} else {
			state.hashes = append(state.hashes, redis.HashEntry{Key: key, Fields: attrs})
		}

		state.geoArgs = append(state.geoArgs, lon, lat, id)
	}

	if len(state.geoArgs) == 0 {
		return
	}
	im.writeBatch(ctx, indexKey, state, result)
}

func (im *Importer) writeBatch(ctx context.Context, indexKey string, state *batchState, result *ImportResult) {
	fields := map[string]interface{}{
		"index":  indexKey,
		"batch":  state.number,
		"run_id": result.RunID,
	}

	// importBatch only appends whole triples; this guards future callers.
	locations, err := geoLocations(state.geoArgs)
	if err != nil {
		im.logger.Error("Aborting index write for batch", err, fields, map[string]interface{}{
			"arg_count": len(state.geoArgs),
		})
		result.FailedBatches++
		im.recorder.RecordBatchFailure(indexKey, "invalid_args")
		if len(state.hashes) > 0 {
			// attributes are still written; the index write alone is dropped
			if _, err := im.store.CommitGeoBatch(ctx, indexKey, state.hashes, nil); err != nil {
				im.logger.Error("Failed to write attributes for batch", err, fields)
			}
		}
		return
	}

	var added int64
	if im.cfg.WriteMode == WriteModeSequential {
		added, err = im.store.GeoAdd(ctx, indexKey, locations...)
	} else {
		added, err = im.store.CommitGeoBatch(ctx, indexKey, state.hashes, locations)
	}
	if err != nil {
		im.logger.Error("Failed to write batch to index", err, fields, map[string]interface{}{
			"members": len(locations),
			"triples": fmt.Sprint(state.geoArgs),
		})
		result.FailedBatches++
		im.recorder.RecordBatchFailure(indexKey, "write_failed")
		return
	}

	result.Imported += added
	im.recorder.RecordImported(indexKey, added)
	im.logger.Debug("Wrote batch", nil, fields, map[string]interface{}{
		"members": len(locations),
		"added":   added,
	})
}

// coordinates resolves rec's longitude and latitude, or the reason the record
// has to be skipped.
func (im *Importer) coordinates(rec location.Record) (float64, float64, string) {
	rawLon, rawLat := rec[location.FieldLongitude], rec[location.FieldLatitude]
	if rawLon == nil || rawLat == nil {
		return 0, 0, SkipMissingCoordinates
	}

	lon, lonOK := location.ParseCoordinate(rawLon)
	lat, latOK := location.ParseCoordinate(rawLat)
	if !lonOK || !latOK {
		return 0, 0, SkipInvalidCoordinates
	}
	if !im.cfg.AllowZeroCoordinates && (lon == 0 || lat == 0) {
		return 0, 0, SkipZeroCoordinates
	}
	if math.Abs(lon) > MaxLongitude || math.Abs(lat) > MaxLatitude {
		return 0, 0, SkipOutOfRange
	}
	return lon, lat, ""
}

func (im *Importer) skip(indexKey string, rec location.Record, reason string, result *ImportResult, err error) {
	result.Skipped++
	im.recorder.RecordSkipped(indexKey, reason)
	im.logger.Warn("Skipping record", err, map[string]interface{}{
		"index":     indexKey,
		"reason":    reason,
		"name":      DisplayName(rec, ""),
		"longitude": fmt.Sprint(rec[location.FieldLongitude]),
		"latitude":  fmt.Sprint(rec[location.FieldLatitude]),
	})
}

// geoLocations converts flat longitude, latitude, member triples into GEOADD members.
func geoLocations(args []interface{}) ([]*redis.GeoLocation, error) {
	if len(args)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d arguments", ErrInvalidArgs, len(args))
	}

	locations := make([]*redis.GeoLocation, 0, len(args)/3)
	for i := 0; i < len(args); i += 3 {
		lon, lonOK := args[i].(float64)
		lat, latOK := args[i+1].(float64)
		name, nameOK := args[i+2].(string)
		if !lonOK || !latOK || !nameOK {
			return nil, fmt.Errorf("%w: triple %d is %v", ErrInvalidArgs, i/3, args[i:i+3])
		}
		locations = append(locations, &redis.GeoLocation{Name: name, Longitude: lon, Latitude: lat})
	}
	return locations, nil
}

// hashArgs flattens attrs into HSET's field, value arguments.
func hashArgs(attrs map[string]string) []interface{} {
	args := make([]interface{}, 0, len(attrs)*2)
	for k, v := range attrs {
		args = append(args, k, v)
	}
	return args
}
