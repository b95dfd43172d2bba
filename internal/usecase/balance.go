package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/polkiloo/ecopoints/internal/adapter/cache"
	"github.com/polkiloo/ecopoints/internal/domain/model"
	"github.com/polkiloo/ecopoints/internal/domain/repository"
)

// BalanceUseCase serves balance summaries and points history.
type BalanceUseCase struct {
	balances  repository.BalanceRepository
	pointsLog repository.PointsLogRepository
	cache     cache.Cache
	logger    *slog.Logger
}

// NewBalanceUseCase constructs BalanceUseCase.
func NewBalanceUseCase(b repository.BalanceRepository, l repository.PointsLogRepository, c cache.Cache, logger *slog.Logger) *BalanceUseCase {
	return &BalanceUseCase{balances: b, pointsLog: l, cache: c, logger: logger}
}

// Summary returns aggregated balance info for user, served from cache when possible.
func (u *BalanceUseCase) Summary(ctx context.Context, userID int64) (*model.BalanceSummary, error) {
	cached, err := u.cache.GetBalance(ctx, userID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		u.logger.Warn("read balance cache", slog.Int64("user_id", userID), slog.String("error", err.Error()))
	}

	summary, err := u.balances.GetSummary(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := u.cache.SetBalance(ctx, summary); err != nil {
		u.logger.Warn("write balance cache", slog.Int64("user_id", userID), slog.String("error", err.Error()))
	}
	return summary, nil
}

// History returns the points log of a user, newest first.
func (u *BalanceUseCase) History(ctx context.Context, userID int64) ([]model.PointsLogEntry, error) {
	return u.pointsLog.List(ctx, model.PointsLogFilter{UserID: userID})
}

// ListPointsLog returns audit entries matching filter.
func (u *BalanceUseCase) ListPointsLog(ctx context.Context, filter model.PointsLogFilter) ([]model.PointsLogEntry, error) {
	return u.pointsLog.List(ctx, filter)
}
