package metrics

import (
	"context"
	"errors"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/geoloc/v1/logger"
	"github.com/Aleph-Alpha/geoloc/v1/observability"
)

// FXModule provides *Metrics, exposes it as MetricsCollector and
// observability.Observer, and pushes the registry on shutdown.
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Supply(metrics.Config{ServiceName: "geoloc", PushgatewayURL: "http://pushgateway:9091"}),
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		func(m *Metrics) MetricsCollector { return m },
		func(m *Metrics) observability.Observer { return m },
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle pushes collected metrics when the application stops.
// A failed push is logged and does not fail shutdown.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			err := m.Push(ctx)
			switch {
			case errors.Is(err, ErrPushDisabled):
				return nil
			case err != nil:
				log.Warn("Failed to push metrics", err, map[string]interface{}{
					"pushgateway": m.cfg.PushgatewayURL,
					"job":         m.cfg.Job,
				})
			default:
				log.Info("Pushed metrics", nil, map[string]interface{}{
					"pushgateway": m.cfg.PushgatewayURL,
					"job":         m.cfg.Job,
				})
			}
			return nil
		},
	})
}
