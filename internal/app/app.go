package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/ecopoints/internal/config"
	"github.com/polkiloo/ecopoints/internal/metrics"
	"github.com/polkiloo/ecopoints/internal/storage/postgres"
	"github.com/polkiloo/ecopoints/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewEcoFacade,
		newHealthChecker,
		newHTTPServer,
		newGrantProcessor,
	),
	fx.Invoke(registerLifecycle),
)

func newHealthChecker(s *postgres.Storage) HealthChecker {
	return s
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

const readHeaderTimeout = 5 * time.Second

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:              p.Config.RunAddress,
		Handler:           p.Router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

type workerParams struct {
	fx.In

	Facade  *EcoFacade
	Metrics *metrics.Metrics
	Config  *config.Config
	Logger  *slog.Logger
}

func newGrantProcessor(p workerParams) *worker.GrantProcessor {
	return worker.NewGrantProcessor(
		p.Facade,
		p.Metrics,
		p.Config.GrantPollInterval,
		p.Config.MaxGrantsBatch,
		p.Config.WorkerPoolSize,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Worker     *worker.GrantProcessor
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting ecopoints",
				slog.String("addr", p.Server.Addr),
				slog.Int("grant_workers", p.Config.WorkerPoolSize),
				slog.Duration("grant_poll_interval", p.Config.GrantPollInterval),
			)
			p.Worker.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			// stop accepting requests before the worker drains
			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				p.Worker.Stop()
				return err
			}
			p.Worker.Stop()
			p.Logger.Info("ecopoints stopped")
			return nil
		},
	})
}
