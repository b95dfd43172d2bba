package app

import (
	"context"

	"github.com/polkiloo/ecopoints/internal/domain/model"
	"github.com/polkiloo/ecopoints/internal/usecase"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type EcoFacade struct {
	users    *usecase.UserUseCase
	vouchers *usecase.VoucherUseCase
	ledger   *usecase.LedgerUseCase
	balance  *usecase.BalanceUseCase
	grants   *usecase.GrantUseCase
	health   HealthChecker
}

func NewEcoFacade(
	users *usecase.UserUseCase,
	vouchers *usecase.VoucherUseCase,
	ledger *usecase.LedgerUseCase,
	balance *usecase.BalanceUseCase,
	grants *usecase.GrantUseCase,
	health HealthChecker,
) *EcoFacade {
	return &EcoFacade{users: users, vouchers: vouchers, ledger: ledger, balance: balance, grants: grants, health: health}
}

func (f *EcoFacade) CreateUser(ctx context.Context, name string) (*model.User, error) {
	return f.users.Create(ctx, name)
}

func (f *EcoFacade) CreateVoucher(ctx context.Context, v model.Voucher) (*model.Voucher, error) {
	return f.vouchers.Create(ctx, v)
}

func (f *EcoFacade) UpdateVoucher(ctx context.Context, v model.Voucher) (*model.Voucher, error) {
	return f.vouchers.Update(ctx, v)
}

func (f *EcoFacade) Voucher(ctx context.Context, id int64) (*model.Voucher, error) {
	return f.vouchers.Get(ctx, id)
}

func (f *EcoFacade) Vouchers(ctx context.Context, activeOnly bool) ([]model.Voucher, error) {
	return f.vouchers.List(ctx, activeOnly)
}

func (f *EcoFacade) Redeem(ctx context.Context, userID, voucherID int64) (*model.Redemption, error) {
	return f.ledger.Redeem(ctx, userID, voucherID)
}

func (f *EcoFacade) Fulfill(ctx context.Context, redemptionID int64, couponCode string) error {
	return f.ledger.Fulfill(ctx, redemptionID, couponCode)
}

func (f *EcoFacade) DiscardRedemption(ctx context.Context, redemptionID int64) error {
	return f.ledger.Discard(ctx, redemptionID)
}

func (f *EcoFacade) Redemptions(ctx context.Context, filter model.RedemptionFilter) ([]model.Redemption, error) {
	return f.ledger.ListRedemptions(ctx, filter)
}

func (f *EcoFacade) UserRedemptions(ctx context.Context, userID int64) ([]model.Redemption, error) {
	return f.ledger.UserRedemptions(ctx, userID)
}

func (f *EcoFacade) Balance(ctx context.Context, userID int64) (*model.BalanceSummary, error) {
	return f.balance.Summary(ctx, userID)
}

func (f *EcoFacade) PointsHistory(ctx context.Context, userID int64) ([]model.PointsLogEntry, error) {
	return f.balance.History(ctx, userID)
}

func (f *EcoFacade) PointsLog(ctx context.Context, filter model.PointsLogFilter) ([]model.PointsLogEntry, error) {
	return f.balance.ListPointsLog(ctx, filter)
}

func (f *EcoFacade) EnqueueGrant(ctx context.Context, g model.Grant) (*model.Grant, error) {
	return f.grants.Enqueue(ctx, g)
}

func (f *EcoFacade) GrantsForCrediting(ctx context.Context, limit int) ([]model.Grant, error) {
	return f.grants.SelectBatchForCrediting(ctx, limit)
}

func (f *EcoFacade) CreditGrant(ctx context.Context, grantID int64) (*model.Grant, error) {
	return f.grants.Credit(ctx, grantID)
}

func (f *EcoFacade) RejectGrant(ctx context.Context, grantID int64) error {
	return f.grants.Reject(ctx, grantID)
}

func (f *EcoFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
