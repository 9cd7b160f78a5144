package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/geoloc/v1/logger"
)

// FXModule provides the *Tracer and shuts it down when the application stops,
// flushing any spans still buffered in the batcher.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    fx.Supply(tracer.Config{ServiceName: "geoloc"}),
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		func(cfg Config, log *logger.Logger) (*Tracer, error) {
			return NewClient(cfg, log)
		},
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers the OnStop shutdown hook for the tracer.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down tracer", nil)
			return tracer.Shutdown(ctx)
		},
	})
}
