package geoindex

import (
	"context"

	"github.com/Aleph-Alpha/geoloc/v1/redis"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=geoindex

// Store is the subset of Redis the geo index is written to and read from.
// *redis.RedisClient implements it.
type Store interface {
	Delete(ctx context.Context, keys ...string) (int64, error)
	ScanKeys(ctx context.Context, match string) ([]string, error)
	HSet(ctx context.Context, key string, values ...interface{}) (int64, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	ZCard(ctx context.Context, key string) (int64, error)
	ZRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	GeoAdd(ctx context.Context, key string, locations ...*redis.GeoLocation) (int64, error)
	GeoSearchLocation(ctx context.Context, key string, q *redis.GeoSearchLocationQuery) ([]redis.GeoLocation, error)
	CommitGeoBatch(ctx context.Context, geoKey string, hashes []redis.HashEntry, locations []*redis.GeoLocation) (int64, error)
}
