package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/Aleph-Alpha/geoloc/internal/config"
	"github.com/Aleph-Alpha/geoloc/v1/geoindex"
	"github.com/Aleph-Alpha/geoloc/v1/logger"
	"github.com/Aleph-Alpha/geoloc/v1/metrics"
	"github.com/Aleph-Alpha/geoloc/v1/minio"
	"github.com/Aleph-Alpha/geoloc/v1/redis"
	"github.com/Aleph-Alpha/geoloc/v1/source"
	"github.com/Aleph-Alpha/geoloc/v1/tracer"
)

// appOptions assembles the fx graph shared by every subcommand. Object
// storage is only wired when an endpoint is configured.
func appOptions(c *config.Config) ([]fx.Option, error) {
	indexCfg, err := c.GeoIndex()
	if err != nil {
		return nil, err
	}

	opts := []fx.Option{
		fx.Supply(
			c.Logger(),
			c.MetricsConfig(),
			c.TracerConfig(),
			c.RedisClient(),
			indexCfg,
		),
		fx.WithLogger(func(l *logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Zap.Named("fx")}
		}),
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		redis.FXModule,
		source.FXModule,
		geoindex.FXModule,
		fx.Provide(
			func(l *logger.Logger) redis.Logger { return l },
			func(l *logger.Logger) geoindex.Logger { return l },
			func(l *logger.Logger) source.Logger { return l },
			func(c redis.Client) geoindex.Store { return c },
			func(m *metrics.Metrics) geoindex.Recorder { return m },
			func(l *source.Loader) geoindex.RecordLoader { return l },
		),
	}

	if c.MinioEnabled() {
		opts = append(opts,
			fx.Supply(c.MinioClient()),
			minio.FXModule,
			fx.Provide(
				func(l *logger.Logger) minio.Logger { return l },
				func(m *minio.MinioClient) source.ObjectGetter { return m },
			),
		)
	}

	return opts, nil
}

// runApp starts the application graph, hands the populated targets to fn and
// stops the graph afterwards so metrics are pushed and spans flushed.
func runApp(ctx context.Context, fn func(ctx context.Context) error, targets ...interface{}) error {
	opts, err := appOptions(cfg)
	if err != nil {
		return err
	}
	opts = append(opts, fx.Populate(targets...))

	app := fx.New(opts...)
	if err := app.Err(); err != nil {
		return eris.Wrap(err, "build application")
	}
	if err := app.Start(ctx); err != nil {
		return eris.Wrap(err, "start application")
	}

	runErr := fn(ctx)

	if err := app.Stop(context.WithoutCancel(ctx)); err != nil && runErr == nil {
		return eris.Wrap(err, "stop application")
	}
	return runErr
}
