package geoindex

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStats(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	importInto(t, store, "idx", namedRecords(12))
	inspector := NewInspector(store, Config{})

	stats, err := inspector.Stats(ctx, "idx", 5)
	require.NoError(t, err)
	assert.Equal(t, "idx", stats.Key)
	assert.Equal(t, int64(12), stats.Members)
	assert.Len(t, stats.Sample, 5)

	stats, err = inspector.Stats(ctx, "idx", 0)
	require.NoError(t, err)
	assert.Empty(t, stats.Sample)

	stats, err = inspector.Stats(ctx, "", 3)
	require.NoError(t, err)
	assert.Equal(t, DefaultIndexKey, stats.Key)
	assert.Zero(t, stats.Members)
}

func TestStatsPropagatesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	boom := errors.New("NOAUTH Authentication required")

	store.EXPECT().ZCard(gomock.Any(), "idx").Return(int64(0), boom)
	_, err := NewInspector(store, Config{}).Stats(context.Background(), "idx", 3)
	assert.ErrorIs(t, err, boom)

	store.EXPECT().ZCard(gomock.Any(), "idx").Return(int64(4), nil)
	store.EXPECT().ZRange(gomock.Any(), "idx", int64(0), int64(2)).Return(nil, boom)
	_, err = NewInspector(store, Config{}).Stats(context.Background(), "idx", 3)
	assert.ErrorIs(t, err, boom)
}
