package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/polkiloo/ecopoints/internal/adapter/cache"
	"github.com/polkiloo/ecopoints/internal/domain/model"
	"github.com/polkiloo/ecopoints/internal/domain/repository"
)

// GrantUseCase queues and applies balance increases.
type GrantUseCase struct {
	grants repository.GrantRepository
	cache  cache.Cache
	logger *slog.Logger
}

// NewGrantUseCase constructs GrantUseCase.
func NewGrantUseCase(g repository.GrantRepository, c cache.Cache, logger *slog.Logger) *GrantUseCase {
	return &GrantUseCase{grants: g, cache: c, logger: logger}
}

// Enqueue stores a grant for asynchronous crediting.
func (u *GrantUseCase) Enqueue(ctx context.Context, g model.Grant) (*model.Grant, error) {
	if err := ValidateGrant(g); err != nil {
		return nil, err
	}
	g.Reason = strings.TrimSpace(g.Reason)
	return u.grants.Enqueue(ctx, g)
}

// SelectBatchForCrediting claims grants awaiting crediting.
func (u *GrantUseCase) SelectBatchForCrediting(ctx context.Context, limit int) ([]model.Grant, error) {
	return u.grants.SelectBatchForCrediting(ctx, limit)
}

// Credit applies a grant to the user balance.
func (u *GrantUseCase) Credit(ctx context.Context, grantID int64) (*model.Grant, error) {
	g, err := u.grants.Credit(ctx, grantID)
	if err != nil {
		return nil, err
	}
	if err := u.cache.InvalidateBalance(ctx, g.UserID); err != nil {
		u.logger.Warn("invalidate balance cache", slog.Int64("user_id", g.UserID), slog.String("error", err.Error()))
	}
	return g, nil
}

// Reject marks a grant that can never be credited.
func (u *GrantUseCase) Reject(ctx context.Context, grantID int64) error {
	return u.grants.Reject(ctx, grantID)
}
