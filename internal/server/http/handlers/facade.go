package handlers

import (
	"context"

	"github.com/polkiloo/ecopoints/internal/domain/model"
)

// UserFacade registers users.
type UserFacade interface {
	CreateUser(ctx context.Context, name string) (*model.User, error)
}

// VoucherFacade exposes the voucher catalogue.
type VoucherFacade interface {
	CreateVoucher(ctx context.Context, v model.Voucher) (*model.Voucher, error)
	UpdateVoucher(ctx context.Context, v model.Voucher) (*model.Voucher, error)
	Voucher(ctx context.Context, id int64) (*model.Voucher, error)
	Vouchers(ctx context.Context, activeOnly bool) ([]model.Voucher, error)
}

// RedemptionFacade encapsulates ledger operations exposed via HTTP.
type RedemptionFacade interface {
	Redeem(ctx context.Context, userID, voucherID int64) (*model.Redemption, error)
	Fulfill(ctx context.Context, redemptionID int64, couponCode string) error
	DiscardRedemption(ctx context.Context, redemptionID int64) error
	Redemptions(ctx context.Context, filter model.RedemptionFilter) ([]model.Redemption, error)
	UserRedemptions(ctx context.Context, userID int64) ([]model.Redemption, error)
}

// BalanceFacade provides balance and points log reads.
type BalanceFacade interface {
	Balance(ctx context.Context, userID int64) (*model.BalanceSummary, error)
	PointsHistory(ctx context.Context, userID int64) ([]model.PointsLogEntry, error)
	PointsLog(ctx context.Context, filter model.PointsLogFilter) ([]model.PointsLogEntry, error)
}

// GrantFacade accepts point grants from earning flows.
type GrantFacade interface {
	EnqueueGrant(ctx context.Context, g model.Grant) (*model.Grant, error)
}

// HealthFacade reports backing store availability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// EcoFacade aggregates the full set of operations used across handlers.
type EcoFacade interface {
	UserFacade
	VoucherFacade
	RedemptionFacade
	BalanceFacade
	GrantFacade
	HealthFacade
}
