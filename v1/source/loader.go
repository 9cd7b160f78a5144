package source

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/Aleph-Alpha/geoloc/v1/location"
)

const s3Scheme = "s3://"

// ObjectGetter downloads objects from object storage. *minio.MinioClient
// implements it.
type ObjectGetter interface {
	Get(ctx context.Context, bucket, objectKey string) ([]byte, error)
}

// Logger is the logging contract satisfied by *logger.Logger.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
}

// Loader reads raw location records from a path or an s3:// URL.
type Loader struct {
	objects ObjectGetter
	logger  Logger
}

// NewLoader creates a Loader. objects may be nil when only local files are read.
func NewLoader(objects ObjectGetter, logger Logger) *Loader {
	return &Loader{objects: objects, logger: logger}
}

// Load reads and parses the input at loc.
//
// Example:
//
//	records, err := loader.Load(ctx, "s3://exports/locations.json")
//	records, err := loader.Load(ctx, "./data/locations.csv")
func (l *Loader) Load(ctx context.Context, loc string) ([]location.Record, error) {
	start := time.Now()

	var (
		data []byte
		name string
		err  error
	)
	if strings.HasPrefix(loc, s3Scheme) {
		var bucket string
		bucket, name, err = splitObjectURL(loc)
		if err != nil {
			return nil, err
		}
		if l.objects == nil {
			return nil, ErrNoObjectStore
		}
		data, err = l.objects.Get(ctx, bucket, name)
	} else {
		name = loc
		data, err = os.ReadFile(loc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", loc, err)
	}

	records, err := parse(strings.ToLower(path.Ext(name)), data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input %s: %w", loc, err)
	}

	if l.logger != nil {
		l.logger.Info("Loaded input records", nil, map[string]interface{}{
			"location":    loc,
			"records":     len(records),
			"bytes":       len(data),
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
	return records, nil
}

// splitObjectURL splits s3://bucket/key into its bucket and key.
func splitObjectURL(loc string) (string, string, error) {
	rest := strings.TrimPrefix(loc, s3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid object location %q, expected s3://bucket/key", loc)
	}
	return bucket, key, nil
}
