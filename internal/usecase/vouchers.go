package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/polkiloo/ecopoints/internal/adapter/cache"
	"github.com/polkiloo/ecopoints/internal/domain/model"
	"github.com/polkiloo/ecopoints/internal/domain/repository"
)

// VoucherUseCase manages the voucher catalogue.
type VoucherUseCase struct {
	vouchers repository.VoucherRepository
	cache    cache.Cache
	logger   *slog.Logger
}

// NewVoucherUseCase constructs VoucherUseCase.
func NewVoucherUseCase(v repository.VoucherRepository, c cache.Cache, logger *slog.Logger) *VoucherUseCase {
	return &VoucherUseCase{vouchers: v, cache: c, logger: logger}
}

func (u *VoucherUseCase) Create(ctx context.Context, v model.Voucher) (*model.Voucher, error) {
	v.Title = strings.TrimSpace(v.Title)
	if err := ValidateVoucher(v); err != nil {
		return nil, err
	}
	return u.vouchers.Create(ctx, v)
}

// Update rewrites a voucher and drops its cached copy.
func (u *VoucherUseCase) Update(ctx context.Context, v model.Voucher) (*model.Voucher, error) {
	v.Title = strings.TrimSpace(v.Title)
	if err := ValidateVoucher(v); err != nil {
		return nil, err
	}
	updated, err := u.vouchers.Update(ctx, v)
	if err != nil {
		return nil, err
	}
	if err := u.cache.InvalidateVoucher(ctx, v.ID); err != nil {
		u.logger.Warn("invalidate voucher cache", slog.Int64("voucher_id", v.ID), slog.String("error", err.Error()))
	}
	return updated, nil
}

// Get returns a voucher, served from cache when possible.
func (u *VoucherUseCase) Get(ctx context.Context, id int64) (*model.Voucher, error) {
	cached, err := u.cache.GetVoucher(ctx, id)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		u.logger.Warn("read voucher cache", slog.Int64("voucher_id", id), slog.String("error", err.Error()))
	}

	v, err := u.vouchers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.cache.SetVoucher(ctx, v); err != nil {
		u.logger.Warn("write voucher cache", slog.Int64("voucher_id", id), slog.String("error", err.Error()))
	}
	return v, nil
}

// List returns the catalogue; activeOnly hides inactive and sold out vouchers.
func (u *VoucherUseCase) List(ctx context.Context, activeOnly bool) ([]model.Voucher, error) {
	return u.vouchers.List(ctx, activeOnly)
}
