package repository

import (
	"context"

	"github.com/polkiloo/ecopoints/internal/domain/model"
)

// LedgerRepository performs the points-for-voucher exchange and its follow-ups.
type LedgerRepository interface {
	// Redeem locks voucher then user, checks stock and balance, applies both
	// decrements and writes the log entry and redemption record in one transaction.
	Redeem(ctx context.Context, userID, voucherID int64) (*model.Redemption, error)
	Fulfill(ctx context.Context, redemptionID int64, couponCode string) error
	Discard(ctx context.Context, redemptionID int64) error
}

// RedemptionRepository lists redemption records.
type RedemptionRepository interface {
	List(ctx context.Context, filter model.RedemptionFilter) ([]model.Redemption, error)
}

// PointsLogRepository lists the append-only points log.
type PointsLogRepository interface {
	List(ctx context.Context, filter model.PointsLogFilter) ([]model.PointsLogEntry, error)
}
