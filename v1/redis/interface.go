package redis

import "context"

// Client is the set of Redis operations the geo index is built on.
//
// This interface is implemented by the concrete *RedisClient type.
type Client interface {
	// Connection and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Key operations
	Delete(ctx context.Context, keys ...string) (int64, error)
	ScanKeys(ctx context.Context, match string) ([]string, error)

	// Hash operations
	HSet(ctx context.Context, key string, values ...interface{}) (int64, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	// Sorted set operations (a GEO set is a sorted set)
	ZCard(ctx context.Context, key string) (int64, error)
	ZRange(ctx context.Context, key string, start, stop int64) ([]string, error)

	// Geo operations
	GeoAdd(ctx context.Context, key string, locations ...*GeoLocation) (int64, error)
	GeoSearchLocation(ctx context.Context, key string, q *GeoSearchLocationQuery) ([]GeoLocation, error)
	CommitGeoBatch(ctx context.Context, geoKey string, hashes []HashEntry, locations []*GeoLocation) (int64, error)
}

var _ Client = (*RedisClient)(nil)
