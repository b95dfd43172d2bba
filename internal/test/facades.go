package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/polkiloo/ecopoints/internal/domain/model"
)

// UserFacadeStub simulates user registration.
type UserFacadeStub struct {
	CreateUserFn func(context.Context, string) (*model.User, error)
}

// CreateUser delegates to override or returns a fresh user.
func (s UserFacadeStub) CreateUser(ctx context.Context, name string) (*model.User, error) {
	if s.CreateUserFn != nil {
		return s.CreateUserFn(ctx, name)
	}
	return &model.User{ID: 1, Name: name, CreatedAt: time.Unix(0, 0)}, nil
}

// VoucherFacadeStub provides controllable catalogue behaviour.
type VoucherFacadeStub struct {
	CreateFn   func(context.Context, model.Voucher) (*model.Voucher, error)
	UpdateFn   func(context.Context, model.Voucher) (*model.Voucher, error)
	VoucherFn  func(context.Context, int64) (*model.Voucher, error)
	VouchersFn func(context.Context, bool) ([]model.Voucher, error)
}

func (s VoucherFacadeStub) CreateVoucher(ctx context.Context, v model.Voucher) (*model.Voucher, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, v)
	}
	v.ID = 1
	return &v, nil
}

func (s VoucherFacadeStub) UpdateVoucher(ctx context.Context, v model.Voucher) (*model.Voucher, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, v)
	}
	return &v, nil
}

func (s VoucherFacadeStub) Voucher(ctx context.Context, id int64) (*model.Voucher, error) {
	if s.VoucherFn != nil {
		return s.VoucherFn(ctx, id)
	}
	return &model.Voucher{ID: id, Title: "Voucher", PointsRequired: 10, Quantity: 1, Status: model.VoucherStatusActive}, nil
}

func (s VoucherFacadeStub) Vouchers(ctx context.Context, activeOnly bool) ([]model.Voucher, error) {
	if s.VouchersFn != nil {
		return s.VouchersFn(ctx, activeOnly)
	}
	return []model.Voucher{{ID: 1, Title: "Voucher", PointsRequired: 10, Quantity: 1, Status: model.VoucherStatusActive}}, nil
}

// RedemptionFacadeStub simulates ledger operations.
type RedemptionFacadeStub struct {
	RedeemFn          func(context.Context, int64, int64) (*model.Redemption, error)
	FulfillFn         func(context.Context, int64, string) error
	DiscardFn         func(context.Context, int64) error
	RedemptionsFn     func(context.Context, model.RedemptionFilter) ([]model.Redemption, error)
	UserRedemptionsFn func(context.Context, int64) ([]model.Redemption, error)
}

func (s RedemptionFacadeStub) Redeem(ctx context.Context, userID, voucherID int64) (*model.Redemption, error) {
	if s.RedeemFn != nil {
		return s.RedeemFn(ctx, userID, voucherID)
	}
	return &model.Redemption{ID: 1, UserID: userID, VoucherID: voucherID, Status: model.RedemptionStatusPending, RequestDate: time.Unix(0, 0)}, nil
}

func (s RedemptionFacadeStub) Fulfill(ctx context.Context, redemptionID int64, couponCode string) error {
	if s.FulfillFn != nil {
		return s.FulfillFn(ctx, redemptionID, couponCode)
	}
	return nil
}

func (s RedemptionFacadeStub) DiscardRedemption(ctx context.Context, redemptionID int64) error {
	if s.DiscardFn != nil {
		return s.DiscardFn(ctx, redemptionID)
	}
	return nil
}

func (s RedemptionFacadeStub) Redemptions(ctx context.Context, filter model.RedemptionFilter) ([]model.Redemption, error) {
	if s.RedemptionsFn != nil {
		return s.RedemptionsFn(ctx, filter)
	}
	return []model.Redemption{{ID: 1, Status: model.RedemptionStatusPending}}, nil
}

func (s RedemptionFacadeStub) UserRedemptions(ctx context.Context, userID int64) ([]model.Redemption, error) {
	if s.UserRedemptionsFn != nil {
		return s.UserRedemptionsFn(ctx, userID)
	}
	return []model.Redemption{{ID: 1, UserID: userID, Status: model.RedemptionStatusPending}}, nil
}

// BalanceFacadeStub simulates balance reads.
type BalanceFacadeStub struct {
	BalanceFn       func(context.Context, int64) (*model.BalanceSummary, error)
	PointsHistoryFn func(context.Context, int64) ([]model.PointsLogEntry, error)
	PointsLogFn     func(context.Context, model.PointsLogFilter) ([]model.PointsLogEntry, error)
}

func (s BalanceFacadeStub) Balance(ctx context.Context, userID int64) (*model.BalanceSummary, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return &model.BalanceSummary{UserID: userID, Current: 60, Earned: 100, Redeemed: 40}, nil
}

func (s BalanceFacadeStub) PointsHistory(ctx context.Context, userID int64) ([]model.PointsLogEntry, error) {
	if s.PointsHistoryFn != nil {
		return s.PointsHistoryFn(ctx, userID)
	}
	return []model.PointsLogEntry{{ID: 1, UserID: userID, PointsDelta: -40, LogType: model.LogTypeRedeemVoucher}}, nil
}

func (s BalanceFacadeStub) PointsLog(ctx context.Context, filter model.PointsLogFilter) ([]model.PointsLogEntry, error) {
	if s.PointsLogFn != nil {
		return s.PointsLogFn(ctx, filter)
	}
	return []model.PointsLogEntry{{ID: 1, PointsDelta: 25, LogType: model.LogTypePickupCompleted}}, nil
}

// GrantFacadeStub simulates grant intake.
type GrantFacadeStub struct {
	EnqueueFn func(context.Context, model.Grant) (*model.Grant, error)
}

func (s GrantFacadeStub) EnqueueGrant(ctx context.Context, g model.Grant) (*model.Grant, error) {
	if s.EnqueueFn != nil {
		return s.EnqueueFn(ctx, g)
	}
	g.ID = 1
	g.Status = model.GrantStatusPending
	return &g, nil
}

// HealthFacadeStub returns a configured health error.
type HealthFacadeStub struct {
	Err error
}

func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.Err
}

// EcoFacadeStub aggregates facade dependencies for HTTP layer tests.
type EcoFacadeStub struct {
	UserFacadeStub
	VoucherFacadeStub
	RedemptionFacadeStub
	BalanceFacadeStub
	GrantFacadeStub
	HealthFacadeStub
}

// WorkerFacadeStub mimics worker interactions with the grant queue.
type WorkerFacadeStub struct {
	Grants   [][]model.Grant
	GrantsFn func(context.Context, int) ([]model.Grant, error)
	CreditFn func(context.Context, int64) (*model.Grant, error)
	RejectFn func(context.Context, int64) error

	Credited []int64
	Rejected []int64

	mu         sync.Mutex
	fetchCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// GrantsForCrediting returns batches from configured queue.
func (s *WorkerFacadeStub) GrantsForCrediting(ctx context.Context, limit int) ([]model.Grant, error) {
	if s.GrantsFn != nil {
		return s.GrantsFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.fetchCount, 1)
	if int(call) <= len(s.Grants) {
		return s.Grants[call-1], nil
	}
	return nil, nil
}

// CreditGrant records credit requests.
func (s *WorkerFacadeStub) CreditGrant(ctx context.Context, grantID int64) (*model.Grant, error) {
	if s.CreditFn != nil {
		return s.CreditFn(ctx, grantID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Credited = append(s.Credited, grantID)
	return &model.Grant{ID: grantID, Status: model.GrantStatusCredited}, nil
}

// RejectGrant records rejections.
func (s *WorkerFacadeStub) RejectGrant(ctx context.Context, grantID int64) error {
	if s.RejectFn != nil {
		return s.RejectFn(ctx, grantID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Rejected = append(s.Rejected, grantID)
	return nil
}
