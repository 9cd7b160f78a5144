package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

// Get downloads bucket/objectKey and returns its contents.
func (m *MinioClient) Get(ctx context.Context, bucket, objectKey string) ([]byte, error) {
	start := time.Now()
	data, err := m.get(ctx, bucket, objectKey)
	m.observeDownload(bucket, objectKey, start, err, int64(len(data)))
	return data, err
}

func (m *MinioClient) get(ctx context.Context, bucket, objectKey string) ([]byte, error) {
	reader, err := m.client.GetObject(ctx, bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", translateError(err))
	}
	defer func(reader io.ReadCloser) {
		if err := reader.Close(); err != nil && m.logger != nil {
			m.logger.Error("failed to close object reader", err, map[string]interface{}{
				"bucket": bucket,
				"key":    objectKey,
			})
		}
	}(reader)

	// GetObject is lazy; Stat surfaces a missing object before reading.
	info, err := reader.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get object stats: %w", translateError(err))
	}

	buf := bytes.NewBuffer(make([]byte, 0, info.Size))
	if _, err := io.Copy(buf, reader); err != nil {
		return nil, fmt.Errorf("failed to read object data: %w", err)
	}

	if m.logger != nil {
		m.logger.Info("Downloaded object", nil, map[string]interface{}{
			"bucket": bucket,
			"key":    objectKey,
			"size":   info.Size,
		})
	}
	return buf.Bytes(), nil
}
