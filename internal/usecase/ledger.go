package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/polkiloo/ecopoints/internal/adapter/cache"
	"github.com/polkiloo/ecopoints/internal/config"
	"github.com/polkiloo/ecopoints/internal/domain/model"
	"github.com/polkiloo/ecopoints/internal/domain/repository"
	"github.com/polkiloo/ecopoints/internal/metrics"
)

// LedgerUseCase runs redemptions against the ledger and keeps derived state fresh.
type LedgerUseCase struct {
	ledger      repository.LedgerRepository
	redemptions repository.RedemptionRepository
	cache       cache.Cache
	metrics     *metrics.Metrics
	logger      *slog.Logger
	txTimeout   time.Duration
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(
	ledger repository.LedgerRepository,
	redemptions repository.RedemptionRepository,
	c cache.Cache,
	m *metrics.Metrics,
	logger *slog.Logger,
	cfg *config.Config,
) *LedgerUseCase {
	return &LedgerUseCase{
		ledger:      ledger,
		redemptions: redemptions,
		cache:       c,
		metrics:     m,
		logger:      logger,
		txTimeout:   cfg.TxTimeout,
	}
}

// Redeem exchanges points of userID for one unit of voucherID.
func (u *LedgerUseCase) Redeem(ctx context.Context, userID, voucherID int64) (*model.Redemption, error) {
	txCtx, cancel := u.withTxTimeout(ctx)
	defer cancel()

	started := time.Now()
	rec, err := u.ledger.Redeem(txCtx, userID, voucherID)
	u.metrics.ObserveRedeem(err, time.Since(started))
	if err != nil {
		return nil, err
	}

	if err := u.cache.InvalidateBalance(ctx, userID); err != nil {
		u.logger.Warn("invalidate balance cache", slog.Int64("user_id", userID), slog.String("error", err.Error()))
	}
	if err := u.cache.InvalidateVoucher(ctx, voucherID); err != nil {
		u.logger.Warn("invalidate voucher cache", slog.Int64("voucher_id", voucherID), slog.String("error", err.Error()))
	}
	return rec, nil
}

// Fulfill attaches the issued coupon code to a pending redemption.
func (u *LedgerUseCase) Fulfill(ctx context.Context, redemptionID int64, couponCode string) error {
	code, err := NormalizeCouponCode(couponCode)
	if err != nil {
		return err
	}

	txCtx, cancel := u.withTxTimeout(ctx)
	defer cancel()
	if err := u.ledger.Fulfill(txCtx, redemptionID, code); err != nil {
		return err
	}
	u.logger.Info("redemption fulfilled", slog.Int64("redemption_id", redemptionID))
	return nil
}

// Discard removes a redemption record without refunding points or stock.
func (u *LedgerUseCase) Discard(ctx context.Context, redemptionID int64) error {
	txCtx, cancel := u.withTxTimeout(ctx)
	defer cancel()
	if err := u.ledger.Discard(txCtx, redemptionID); err != nil {
		return err
	}
	u.logger.Info("redemption discarded", slog.Int64("redemption_id", redemptionID))
	return nil
}

// ListRedemptions returns redemptions matching filter, newest first.
func (u *LedgerUseCase) ListRedemptions(ctx context.Context, filter model.RedemptionFilter) ([]model.Redemption, error) {
	return u.redemptions.List(ctx, filter)
}

// UserRedemptions returns redemption history of a user.
func (u *LedgerUseCase) UserRedemptions(ctx context.Context, userID int64) ([]model.Redemption, error) {
	return u.redemptions.List(ctx, model.RedemptionFilter{UserID: userID})
}

func (u *LedgerUseCase) withTxTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.txTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, u.txTimeout)
}
