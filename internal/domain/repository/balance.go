package repository

import (
	"context"

	"github.com/polkiloo/ecopoints/internal/domain/model"
)

// BalanceRepository reads aggregated point balances.
type BalanceRepository interface {
	GetSummary(ctx context.Context, userID int64) (*model.BalanceSummary, error)
}
