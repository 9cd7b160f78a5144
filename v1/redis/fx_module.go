package redis

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/geoloc/v1/observability"
)

// FXModule is an fx.Module that provides and configures the Redis client.
//
// The module:
// 1. Provides the *RedisClient, picking up an optional Logger and Observer
// 2. Exposes it as the Client interface
// 3. Pings on start and closes on stop
//
// Usage:
//
//	app := fx.New(
//	    redis.FXModule,
//	    fx.Supply(redis.Config{Host: "localhost", Port: 6379}),
//	)
var FXModule = fx.Module("redis",
	fx.Provide(
		NewClientWithDI,
		func(c *RedisClient) Client { return c },
	),
	fx.Invoke(RegisterRedisLifecycle),
)

// RedisParams groups the dependencies needed to create a Redis client
type RedisParams struct {
	fx.In

	Config   Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewClientWithDI creates a new Redis client using dependency injection.
// The optional logger is injected into the config and the optional observer
// is attached before the client is returned.
func NewClientWithDI(params RedisParams) (*RedisClient, error) {
	if params.Logger != nil {
		params.Config.Logger = params.Logger
	}

	client, err := NewClient(params.Config)
	if err != nil {
		return nil, err
	}
	if params.Observer != nil {
		client.WithObserver(params.Observer)
	}
	return client, nil
}

// RedisLifecycleParams groups the dependencies needed for Redis lifecycle management
type RedisLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *RedisClient
}

// RegisterRedisLifecycle pings Redis when the application starts, failing the
// start if the server is unreachable, and closes the client on stop.
func RegisterRedisLifecycle(params RedisLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.Client.Ping(ctx); err != nil {
				if params.Client.logger != nil {
					params.Client.logger.Error("Failed to ping Redis on startup", err)
				}
				return err
			}
			params.Client.logInfo("Redis client started and healthy", nil)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return params.Client.Close()
		},
	})
}
