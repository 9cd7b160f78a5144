package tracer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Aleph-Alpha/geoloc/v1/logger"
)

func TestNewClientWithoutExport(t *testing.T) {
	tr, err := NewClient(Config{ServiceName: "geoloc-test", AppEnv: "test"}, logger.NewNop())
	require.NoError(t, err)

	ctx, span := tr.StartSpan(context.Background(), "import")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, tr.Shutdown(ctx))
}

func TestRecordErrorOnSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tr := &Tracer{tracer: tp, logger: logger.NewNop()}

	_, span := tr.StartSpan(context.Background(), "search")
	SetAttributes(span, map[string]interface{}{"index": "all_locations", "limit": 5, "radius_km": 1.5, "ok": true, "other": []int{1}})
	RecordErrorOnSpan(span, errors.New("connection refused"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "connection refused", ended[0].Status().Description)
	assert.Len(t, ended[0].Attributes(), 5)
}

func TestShutdownNil(t *testing.T) {
	var tr *Tracer
	assert.NoError(t, tr.Shutdown(context.Background()))
}
