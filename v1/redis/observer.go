package redis

import (
	"time"

	"github.com/Aleph-Alpha/geoloc/v1/observability"
)

// observe reports a finished command to the observer, if any. key is the
// key the command targeted. A redis.Nil reply is a miss, not a failure, and
// is reported with a nil Error.
func (r *RedisClient) observe(command, key string, start time.Time, err error, size int64, metadata map[string]interface{}) {
	if r == nil || r.observer == nil {
		return
	}
	if IsNilError(err) {
		err = nil
	}

	r.observer.ObserveOperation(observability.OperationContext{
		Component: "redis",
		Operation: command,
		Resource:  key,
		Duration:  time.Since(start),
		Error:     err,
		Size:      size,
		Metadata:  metadata,
	})
}
