package geoindex

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Aleph-Alpha/geoloc/v1/location"
)

// WriteMode selects how a batch's attribute hashes and GEO members are written.
type WriteMode string

const (
	// WriteModeTransactional sends a batch's HSETs and its GEOADD in one MULTI/EXEC.
	WriteModeTransactional WriteMode = "transactional"

	// WriteModeSequential issues each HSET as its record is processed, then one
	// GEOADD per batch. A failure between the two leaves attribute hashes with
	// no index member until the next import.
	WriteModeSequential WriteMode = "sequential"
)

const (
	DefaultIndexKey          = "all_locations"
	DefaultBatchSize         = 100
	DefaultWriteMode         = WriteModeTransactional
	DefaultSearchLimit       = 5
	DefaultSearchConcurrency = 8

	// DefaultSearchRadiusKm is the Earth's circumference, i.e. unbounded.
	DefaultSearchRadiusKm = 40075.0

	// MaxLatitude is the largest latitude a Redis GEO set accepts (EPSG:3857).
	MaxLatitude  = 85.05112878
	MaxLongitude = 180.0

	deleteChunkSize = 500
)

// Config controls importing and searching.
type Config struct {
	// IndexKey is used when an operation is called with an empty key.
	// Default: "all_locations"
	IndexKey string

	// BatchSize bounds the number of records written per batch.
	// Default: 100
	BatchSize int

	// WriteMode selects transactional or sequential batch writes.
	// Default: transactional
	WriteMode WriteMode

	// AllowZeroCoordinates accepts a longitude or latitude of exactly 0.
	// By default such records are skipped like missing coordinates.
	AllowZeroCoordinates bool

	// SearchConcurrency bounds the attribute fetches of one search.
	// Default: 8
	SearchConcurrency int
}

func (c Config) withDefaults() Config {
	if c.IndexKey == "" {
		c.IndexKey = DefaultIndexKey
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.WriteMode == "" {
		c.WriteMode = DefaultWriteMode
	}
	if c.SearchConcurrency <= 0 {
		c.SearchConcurrency = DefaultSearchConcurrency
	}
	return c
}

// ParseWriteMode converts a configuration string into a WriteMode.
func ParseWriteMode(s string) (WriteMode, error) {
	switch WriteMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", WriteModeTransactional:
		return WriteModeTransactional, nil
	case WriteModeSequential:
		return WriteModeSequential, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidWriteMode, s)
	}
}

// Logger is the logging contract satisfied by *logger.Logger.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Recorder receives import and search measurements. *metrics.Metrics implements it.
type Recorder interface {
	RecordImported(index string, n int64)
	RecordSkipped(index, reason string)
	RecordBatchFailure(index, reason string)
	ObserveImportDuration(index string, start time.Time)
	ObserveSearch(index string, start time.Time, results int)
}

// RecordLoader reads raw records from an input location. *source.Loader implements it.
type RecordLoader interface {
	Load(ctx context.Context, loc string) ([]location.Record, error)
}

type nopRecorder struct{}

func (nopRecorder) RecordImported(string, int64)            {}
func (nopRecorder) RecordSkipped(string, string)            {}
func (nopRecorder) RecordBatchFailure(string, string)       {}
func (nopRecorder) ObserveImportDuration(string, time.Time) {}
func (nopRecorder) ObserveSearch(string, time.Time, int)    {}
