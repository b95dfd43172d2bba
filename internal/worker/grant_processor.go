package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/ecopoints/internal/domain/errors"
	"github.com/polkiloo/ecopoints/internal/domain/model"
	"github.com/polkiloo/ecopoints/internal/metrics"
)

// GrantFacade exposes the subset of application functionality required by the worker.
type GrantFacade interface {
	GrantsForCrediting(ctx context.Context, limit int) ([]model.Grant, error)
	CreditGrant(ctx context.Context, grantID int64) (*model.Grant, error)
	RejectGrant(ctx context.Context, grantID int64) error
}

// GrantProcessor polls queued point grants and credits them concurrently.
type GrantProcessor struct {
	facade       GrantFacade
	metrics      *metrics.Metrics
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Grant
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewGrantProcessor constructs grant processor worker pool.
func NewGrantProcessor(facade GrantFacade, m *metrics.Metrics, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *GrantProcessor {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &GrantProcessor{
		facade:       facade,
		metrics:      m,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Grant, batchSize*workers),
	}
}

// Start launches background processing.
func (p *GrantProcessor) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *GrantProcessor) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *GrantProcessor) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *GrantProcessor) fetchAndDispatch(ctx context.Context) {
	grants, err := p.facade.GrantsForCrediting(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("fetch grants for crediting failed", slog.String("error", err.Error()))
		return
	}
	for _, g := range grants {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- g:
		}
	}
}

func (p *GrantProcessor) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case g, ok := <-p.jobs:
			if !ok {
				return
			}
			p.handleGrant(ctx, g)
		}
	}
}

func (p *GrantProcessor) handleGrant(ctx context.Context, g model.Grant) {
	credited, err := p.facade.CreditGrant(ctx, g.ID)
	switch {
	case err == nil:
		p.metrics.ObserveGrant(metrics.GrantCredited)
		p.logger.Info("grant credited",
			slog.Int64("grant_id", credited.ID),
			slog.Int64("user_id", credited.UserID),
			slog.Int64("points", credited.Points),
		)
	case errors.Is(err, domainErrors.ErrNotFound):
		// the user is gone; the grant can never be applied
		if rejectErr := p.facade.RejectGrant(ctx, g.ID); rejectErr != nil {
			p.metrics.ObserveGrant(metrics.GrantFailed)
			p.logger.Error("reject grant failed", slog.Int64("grant_id", g.ID), slog.String("error", rejectErr.Error()))
			return
		}
		p.metrics.ObserveGrant(metrics.GrantRejected)
		p.logger.Warn("grant rejected", slog.Int64("grant_id", g.ID), slog.Int64("user_id", g.UserID))
	default:
		p.metrics.ObserveGrant(metrics.GrantFailed)
		p.logger.Error("credit grant failed", slog.Int64("grant_id", g.ID), slog.String("error", err.Error()))
	}
}
