package test

import (
	"context"
	"sync"

	"github.com/polkiloo/ecopoints/internal/adapter/cache"
	"github.com/polkiloo/ecopoints/internal/domain/model"
)

// CacheStub is an in-memory cache.Cache with error injection.
type CacheStub struct {
	mu       sync.Mutex
	Balances map[int64]model.BalanceSummary
	Vouchers map[int64]model.Voucher

	GetErr        error
	SetErr        error
	InvalidateErr error

	InvalidatedBalances []int64
	InvalidatedVouchers []int64
}

// NewCacheStub returns an empty cache stub.
func NewCacheStub() *CacheStub {
	return &CacheStub{
		Balances: make(map[int64]model.BalanceSummary),
		Vouchers: make(map[int64]model.Voucher),
	}
}

func (c *CacheStub) GetBalance(ctx context.Context, userID int64) (*model.BalanceSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.GetErr != nil {
		return nil, c.GetErr
	}
	if s, ok := c.Balances[userID]; ok {
		return &s, nil
	}
	return nil, cache.ErrMiss
}

func (c *CacheStub) SetBalance(ctx context.Context, summary *model.BalanceSummary) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.SetErr != nil {
		return c.SetErr
	}
	c.Balances[summary.UserID] = *summary
	return nil
}

func (c *CacheStub) InvalidateBalance(ctx context.Context, userID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.InvalidatedBalances = append(c.InvalidatedBalances, userID)
	if c.InvalidateErr != nil {
		return c.InvalidateErr
	}
	delete(c.Balances, userID)
	return nil
}

func (c *CacheStub) GetVoucher(ctx context.Context, voucherID int64) (*model.Voucher, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.GetErr != nil {
		return nil, c.GetErr
	}
	if v, ok := c.Vouchers[voucherID]; ok {
		return &v, nil
	}
	return nil, cache.ErrMiss
}

func (c *CacheStub) SetVoucher(ctx context.Context, voucher *model.Voucher) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.SetErr != nil {
		return c.SetErr
	}
	c.Vouchers[voucher.ID] = *voucher
	return nil
}

func (c *CacheStub) InvalidateVoucher(ctx context.Context, voucherID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.InvalidatedVouchers = append(c.InvalidatedVouchers, voucherID)
	if c.InvalidateErr != nil {
		return c.InvalidateErr
	}
	delete(c.Vouchers, voucherID)
	return nil
}

func (c *CacheStub) Close() error { return nil }

var _ cache.Cache = (*CacheStub)(nil)
