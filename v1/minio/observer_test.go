package minio

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/geoloc/v1/observability"
)

type recordingObserver struct {
	mu  sync.Mutex
	ops []observability.OperationContext
}

func (r *recordingObserver) ObserveOperation(ctx observability.OperationContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, ctx)
}

func TestObserveDownload(t *testing.T) {
	obs := &recordingObserver{}
	m := (&MinioClient{}).WithObserver(obs)

	m.observeDownload("imports", "a.json", time.Now(), nil, 42)
	m.observeDownload("imports", "missing.json", time.Now(), fmt.Errorf("failed to get object stats: %w", ErrObjectNotFound), 0)

	require.Len(t, obs.ops, 2)
	assert.Equal(t, "minio", obs.ops[0].Component)
	assert.Equal(t, "get", obs.ops[0].Operation)
	assert.Equal(t, "imports", obs.ops[0].Resource)
	assert.Equal(t, "a.json", obs.ops[0].SubResource)
	assert.Equal(t, int64(42), obs.ops[0].Size)
	assert.Nil(t, obs.ops[0].Metadata)

	assert.Error(t, obs.ops[1].Error)
	assert.Equal(t, true, obs.ops[1].Metadata["not_found"])
}

func TestObserveDownloadNilObserver(t *testing.T) {
	m := &MinioClient{}
	m.observeDownload("imports", "a.json", time.Now(), nil, 1)
}
