package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/ecopoints/internal/domain/errors"
	"github.com/polkiloo/ecopoints/internal/domain/model"
	"github.com/polkiloo/ecopoints/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByID map[int64]*model.User
	Next int64
	Err  error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{ByID: make(map[int64]*model.User), Next: 1}
}

// Create registers user unless stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Name: name}
	s.Next++
	s.ByID[user.ID] = user
	return user, nil
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// BalanceRepositoryStub lets tests control balance data.
type BalanceRepositoryStub struct {
	GetSummaryFn func(context.Context, int64) (*model.BalanceSummary, error)
	Summary      *model.BalanceSummary
	Calls        int
}

// GetSummary returns configured summary or not found.
func (s *BalanceRepositoryStub) GetSummary(ctx context.Context, userID int64) (*model.BalanceSummary, error) {
	s.Calls++
	if s.GetSummaryFn != nil {
		return s.GetSummaryFn(ctx, userID)
	}
	if s.Summary == nil {
		return nil, domainErrors.ErrNotFound
	}
	return s.Summary, nil
}

// VoucherRepositoryStub keeps vouchers in a map.
type VoucherRepositoryStub struct {
	CreateFn func(context.Context, model.Voucher) (*model.Voucher, error)
	UpdateFn func(context.Context, model.Voucher) (*model.Voucher, error)
	ListFn   func(context.Context, bool) ([]model.Voucher, error)
	Items    map[int64]*model.Voucher
	GetCalls int
}

func (s *VoucherRepositoryStub) Create(ctx context.Context, v model.Voucher) (*model.Voucher, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, v)
	}
	if s.Items == nil {
		s.Items = make(map[int64]*model.Voucher)
	}
	v.ID = int64(len(s.Items) + 1)
	s.Items[v.ID] = &v
	return &v, nil
}

func (s *VoucherRepositoryStub) Update(ctx context.Context, v model.Voucher) (*model.Voucher, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, v)
	}
	if _, ok := s.Items[v.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	s.Items[v.ID] = &v
	return &v, nil
}

func (s *VoucherRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Voucher, error) {
	s.GetCalls++
	if v, ok := s.Items[id]; ok {
		copied := *v
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *VoucherRepositoryStub) List(ctx context.Context, activeOnly bool) ([]model.Voucher, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, activeOnly)
	}
	var result []model.Voucher
	for _, v := range s.Items {
		if activeOnly && (v.Status != model.VoucherStatusActive || v.Quantity <= 0) {
			continue
		}
		result = append(result, *v)
	}
	return result, nil
}

// LedgerRepositoryStub records ledger calls and returns configured results.
type LedgerRepositoryStub struct {
	RedeemFn  func(context.Context, int64, int64) (*model.Redemption, error)
	FulfillFn func(context.Context, int64, string) error
	DiscardFn func(context.Context, int64) error

	Fulfilled map[int64]string
	Discarded []int64
}

func (s *LedgerRepositoryStub) Redeem(ctx context.Context, userID, voucherID int64) (*model.Redemption, error) {
	if s.RedeemFn != nil {
		return s.RedeemFn(ctx, userID, voucherID)
	}
	return &model.Redemption{ID: 1, UserID: userID, VoucherID: voucherID, Status: model.RedemptionStatusPending}, nil
}

func (s *LedgerRepositoryStub) Fulfill(ctx context.Context, redemptionID int64, couponCode string) error {
	if s.FulfillFn != nil {
		return s.FulfillFn(ctx, redemptionID, couponCode)
	}
	if s.Fulfilled == nil {
		s.Fulfilled = make(map[int64]string)
	}
	s.Fulfilled[redemptionID] = couponCode
	return nil
}

func (s *LedgerRepositoryStub) Discard(ctx context.Context, redemptionID int64) error {
	if s.DiscardFn != nil {
		return s.DiscardFn(ctx, redemptionID)
	}
	s.Discarded = append(s.Discarded, redemptionID)
	return nil
}

// RedemptionRepositoryStub returns configured listings and remembers the last filter.
type RedemptionRepositoryStub struct {
	Items      []model.Redemption
	Err        error
	LastFilter model.RedemptionFilter
}

func (s *RedemptionRepositoryStub) List(ctx context.Context, filter model.RedemptionFilter) ([]model.Redemption, error) {
	s.LastFilter = filter
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}

// PointsLogRepositoryStub returns configured audit entries and remembers the last filter.
type PointsLogRepositoryStub struct {
	Items      []model.PointsLogEntry
	Err        error
	LastFilter model.PointsLogFilter
}

func (s *PointsLogRepositoryStub) List(ctx context.Context, filter model.PointsLogFilter) ([]model.PointsLogEntry, error) {
	s.LastFilter = filter
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}

// GrantRepositoryStub allows tests to customize grant behaviour.
type GrantRepositoryStub struct {
	EnqueueFn func(context.Context, model.Grant) (*model.Grant, error)
	BatchFn   func(context.Context, int) ([]model.Grant, error)
	CreditFn  func(context.Context, int64) (*model.Grant, error)
	RejectFn  func(context.Context, int64) error

	mu       sync.Mutex
	Enqueued []model.Grant
	Rejected []int64
}

func (s *GrantRepositoryStub) Enqueue(ctx context.Context, g model.Grant) (*model.Grant, error) {
	if s.EnqueueFn != nil {
		return s.EnqueueFn(ctx, g)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = int64(len(s.Enqueued) + 1)
	g.Status = model.GrantStatusPending
	s.Enqueued = append(s.Enqueued, g)
	return &g, nil
}

func (s *GrantRepositoryStub) SelectBatchForCrediting(ctx context.Context, limit int) ([]model.Grant, error) {
	if s.BatchFn != nil {
		return s.BatchFn(ctx, limit)
	}
	return nil, nil
}

func (s *GrantRepositoryStub) Credit(ctx context.Context, grantID int64) (*model.Grant, error) {
	if s.CreditFn != nil {
		return s.CreditFn(ctx, grantID)
	}
	return &model.Grant{ID: grantID, Status: model.GrantStatusCredited}, nil
}

func (s *GrantRepositoryStub) Reject(ctx context.Context, grantID int64) error {
	if s.RejectFn != nil {
		return s.RejectFn(ctx, grantID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Rejected = append(s.Rejected, grantID)
	return nil
}

var (
	_ repository.UserRepository       = (*UserRepositoryStub)(nil)
	_ repository.BalanceRepository    = (*BalanceRepositoryStub)(nil)
	_ repository.VoucherRepository    = (*VoucherRepositoryStub)(nil)
	_ repository.LedgerRepository     = (*LedgerRepositoryStub)(nil)
	_ repository.RedemptionRepository = (*RedemptionRepositoryStub)(nil)
	_ repository.PointsLogRepository  = (*PointsLogRepositoryStub)(nil)
	_ repository.GrantRepository      = (*GrantRepositoryStub)(nil)
)
