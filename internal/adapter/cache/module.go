package cache

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/ecopoints/internal/config"
)

// Module exposes the summary cache to the fx graph.
var Module = fx.Options(
	fx.Provide(newCache),
	fx.Invoke(registerLifecycle),
)

type cacheParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newCache(p cacheParams) (Cache, error) {
	if p.Config.RedisAddress == "" {
		p.Logger.Info("redis address not set, cache disabled")
		return Noop{}, nil
	}
	c, err := NewRedisCache(p.Ctx, p.Config.RedisAddress, p.Config.RedisPassword, p.Config.CacheTTL)
	if err != nil {
		return nil, err
	}
	p.Logger.Info("redis cache connected", slog.String("addr", p.Config.RedisAddress))
	return c, nil
}

func registerLifecycle(lc fx.Lifecycle, c Cache) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return c.Close()
		},
	})
}
