package redis

import (
	"context"
	"strings"
	"time"
)

// Ping checks if the Redis server is reachable and responsive.
func (r *RedisClient) Ping(ctx context.Context) error {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	err := r.client.Ping(ctx).Err()
	r.observe("ping", "", start, err, 0, nil)
	return err
}

// Delete deletes one or more keys.
// Returns the number of keys that were deleted.
func (r *RedisClient) Delete(ctx context.Context, keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, err := r.client.Del(ctx, keys...).Result()
	r.observe("delete", keys[0], start, err, result, map[string]interface{}{
		"key_count": len(keys),
	})
	return result, err
}

// ScanKeys collects every key matching the glob pattern using SCAN, so large
// keyspaces are walked without blocking the server the way KEYS would.
func (r *RedisClient) ScanKeys(ctx context.Context, match string) ([]string, error) {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	var keys []string
	iter := r.client.Scan(ctx, 0, match, DefaultScanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	err := iter.Err()

	r.observe("scan", match, start, err, int64(len(keys)), nil)
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// --- Hash Operations ---

// HSet sets field in the hash stored at key to value.
// If the key doesn't exist, a new hash is created.
func (r *RedisClient) HSet(ctx context.Context, key string, values ...interface{}) (int64, error) {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, err := r.client.HSet(ctx, key, values...).Result()
	r.observe("hset", key, start, err, result, map[string]interface{}{
		"field_count": len(values) / 2,
	})
	return result, err
}

// HGetAll returns all fields and values in the hash stored at key.
// A missing key yields an empty map and no error.
func (r *RedisClient) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, err := r.client.HGetAll(ctx, key).Result()
	r.observe("hgetall", key, start, err, int64(len(result)), nil)
	return result, err
}

// --- Sorted Set Operations ---

// ZRange returns the specified range of elements in the sorted set stored at key.
// The elements are ordered from the lowest to the highest score.
func (r *RedisClient) ZRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	begin := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, err := r.client.ZRange(ctx, key, start, stop).Result()
	r.observe("zrange", key, begin, err, int64(len(result)), nil)
	return result, err
}

// ZCard returns the number of elements in the sorted set stored at key.
func (r *RedisClient) ZCard(ctx context.Context, key string) (int64, error) {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, err := r.client.ZCard(ctx, key).Result()
	r.observe("zcard", key, start, err, result, nil)
	return result, err
}

// EscapeGlob escapes the characters SCAN/KEYS treat as glob syntax, so a
// literal key can be used as a pattern prefix.
func EscapeGlob(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		switch c {
		case '*', '?', '[', ']', '\\', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}
