package geoindex

import (
	"context"
	"errors"
	"math"
	"path"
	"sort"
	"sync"
	"time"

	"github.com/Aleph-Alpha/geoloc/v1/location"
	"github.com/Aleph-Alpha/geoloc/v1/redis"
)

const earthRadiusMeters = 6372797.560856

var errInvalidPair = errors.New("ERR invalid longitude,latitude pair")

// memoryStore is an in-memory Store with the GEO semantics the importer and
// searcher rely on.
type memoryStore struct {
	mu     sync.Mutex
	geo    map[string]map[string]redis.GeoLocation
	hashes map[string]map[string]string

	geoWrites     int
	failGeoWrites map[int]error
	searchErr     error
	hgetallErr    error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		geo:           map[string]map[string]redis.GeoLocation{},
		hashes:        map[string]map[string]string{},
		failGeoWrites: map[int]error{},
	}
}

func (s *memoryStore) Delete(_ context.Context, keys ...string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, k := range keys {
		if _, ok := s.geo[k]; ok {
			delete(s.geo, k)
			n++
		}
		if _, ok := s.hashes[k]; ok {
			delete(s.hashes, k)
			n++
		}
	}
	return n, nil
}

func (s *memoryStore) ScanKeys(_ context.Context, match string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var keys []string
	for k := range s.hashes {
		if ok, _ := path.Match(match, k); ok {
			keys = append(keys, k)
		}
	}
	for k := range s.geo {
		if ok, _ := path.Match(match, k); ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *memoryStore) HSet(_ context.Context, key string, values ...interface{}) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hset(key, values), nil
}

func (s *memoryStore) hset(key string, values []interface{}) int64 {
	h, ok := s.hashes[key]
	if !ok {
		h = map[string]string{}
		s.hashes[key] = h
	}
	var added int64
	for i := 0; i+1 < len(values); i += 2 {
		field := values[i].(string)
		if _, exists := h[field]; !exists {
			added++
		}
		h[field] = values[i+1].(string)
	}
	return added
}

func (s *memoryStore) HGetAll(_ context.Context, key string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hgetallErr != nil {
		return nil, s.hgetallErr
	}
	out := map[string]string{}
	for k, v := range s.hashes[key] {
		out[k] = v
	}
	return out, nil
}

func (s *memoryStore) ZCard(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.geo[key])), nil
}

func (s *memoryStore) ZRange(_ context.Context, key string, start, stop int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.geo[key]))
	for name := range s.geo[key] {
		names = append(names, name)
	}
	sort.Strings(names)
	if stop < 0 || stop >= int64(len(names)) {
		stop = int64(len(names)) - 1
	}
	if start > stop {
		return []string{}, nil
	}
	return names[start : stop+1], nil
}

func (s *memoryStore) GeoAdd(_ context.Context, key string, locations ...*redis.GeoLocation) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.nextGeoWrite(locations); err != nil {
		return 0, err
	}
	return s.geoadd(key, locations), nil
}

func (s *memoryStore) CommitGeoBatch(_ context.Context, geoKey string, hashes []redis.HashEntry, locations []*redis.GeoLocation) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(locations) > 0 {
		if err := s.nextGeoWrite(locations); err != nil {
			return 0, errors.Join(redis.ErrTxFailed, err)
		}
	}
	for _, h := range hashes {
		args := make([]interface{}, 0, len(h.Fields)*2)
		for k, v := range h.Fields {
			args = append(args, k, v)
		}
		s.hset(h.Key, args)
	}
	return s.geoadd(geoKey, locations), nil
}

func (s *memoryStore) nextGeoWrite(locations []*redis.GeoLocation) error {
	s.geoWrites++
	if err, ok := s.failGeoWrites[s.geoWrites]; ok {
		return err
	}
	for _, l := range locations {
		if math.Abs(l.Longitude) > MaxLongitude || math.Abs(l.Latitude) > MaxLatitude {
			return errInvalidPair
		}
	}
	return nil
}

func (s *memoryStore) geoadd(key string, locations []*redis.GeoLocation) int64 {
	if len(locations) == 0 {
		return 0
	}
	set, ok := s.geo[key]
	if !ok {
		set = map[string]redis.GeoLocation{}
		s.geo[key] = set
	}
	var added int64
	for _, l := range locations {
		if _, exists := set[l.Name]; !exists {
			added++
		}
		set[l.Name] = *l
	}
	return added
}

func (s *memoryStore) GeoSearchLocation(_ context.Context, key string, q *redis.GeoSearchLocationQuery) ([]redis.GeoLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.searchErr != nil {
		return nil, s.searchErr
	}

	var out []redis.GeoLocation
	for _, l := range s.geo[key] {
		d := haversineKm(q.Longitude, q.Latitude, l.Longitude, l.Latitude)
		if d <= q.Radius {
			l.Dist = d
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Dist < out[j].Dist })
	if q.Count > 0 && len(out) > q.Count {
		out = out[:q.Count]
	}
	return out, nil
}

func (s *memoryStore) hash(key string) (map[string]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.hashes[key]
	return h, ok
}

func haversineKm(lon1, lat1, lon2, lat2 float64) float64 {
	rad := math.Pi / 180
	lat1r, lat2r := lat1*rad, lat2*rad
	u := math.Sin((lat2r - lat1r) / 2)
	v := math.Sin((lon2 - lon1) * rad / 2)
	a := u*u + math.Cos(lat1r)*math.Cos(lat2r)*v*v
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a)) / 1000
}

// countingRecorder tallies what the importer and searcher report.
type countingRecorder struct {
	mu            sync.Mutex
	imported      int64
	skipped       map[string]int
	batchFailures map[string]int
	imports       int
	searches      int
	lastResults   int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{skipped: map[string]int{}, batchFailures: map[string]int{}}
}

func (r *countingRecorder) RecordImported(_ string, n int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.imported += n
}

func (r *countingRecorder) RecordSkipped(_ string, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipped[reason]++
}

func (r *countingRecorder) RecordBatchFailure(_ string, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batchFailures[reason]++
}

func (r *countingRecorder) ObserveImportDuration(string, time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.imports++
}

func (r *countingRecorder) ObserveSearch(_ string, _ time.Time, results int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searches++
	r.lastResults = results
}

// staticLoader returns fixed records, or err.
type staticLoader struct {
	records []location.Record
	err     error
}

func (l staticLoader) Load(context.Context, string) ([]location.Record, error) {
	return l.records, l.err
}

func namedRecords(n int) []location.Record {
	out := make([]location.Record, n)
	for i := range out {
		out[i] = location.Record{
			"restaurant_name": "Place " + string(rune('A'+i%26)),
			"longitude":       -73.0 - float64(i)/1000,
			"latitude":        40.0 + float64(i)/1000,
		}
	}
	return out
}
