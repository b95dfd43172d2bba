package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/ecopoints/internal/adapter/cache"
	"github.com/polkiloo/ecopoints/internal/app"
	"github.com/polkiloo/ecopoints/internal/config"
	"github.com/polkiloo/ecopoints/internal/logger"
	"github.com/polkiloo/ecopoints/internal/metrics"
	"github.com/polkiloo/ecopoints/internal/server/http/router"
	"github.com/polkiloo/ecopoints/internal/storage/postgres"
	"github.com/polkiloo/ecopoints/internal/usecase"
)

// Module composes the full application graph. Extra options are appended last
// so callers can replace any component.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		postgres.Module,
		cache.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
