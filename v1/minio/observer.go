package minio

import (
	"errors"
	"time"

	"github.com/Aleph-Alpha/geoloc/v1/observability"
)

// observeDownload reports a finished object download. The bucket is the
// resource and the object key the sub-resource.
func (m *MinioClient) observeDownload(bucket, objectKey string, start time.Time, err error, size int64) {
	if m == nil || m.observer == nil {
		return
	}

	var metadata map[string]interface{}
	if errors.Is(err, ErrObjectNotFound) {
		metadata = map[string]interface{}{"not_found": true}
	}

	m.observer.ObserveOperation(observability.OperationContext{
		Component:   "minio",
		Operation:   "get",
		Resource:    bucket,
		SubResource: objectKey,
		Duration:    time.Since(start),
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}
