package cache

import (
	"context"

	"github.com/polkiloo/ecopoints/internal/domain/model"
)

// Noop is used when no redis address is configured; every read misses.
type Noop struct{}

func (Noop) GetBalance(context.Context, int64) (*model.BalanceSummary, error) { return nil, ErrMiss }
func (Noop) SetBalance(context.Context, *model.BalanceSummary) error         { return nil }
func (Noop) InvalidateBalance(context.Context, int64) error                  { return nil }
func (Noop) GetVoucher(context.Context, int64) (*model.Voucher, error)       { return nil, ErrMiss }
func (Noop) SetVoucher(context.Context, *model.Voucher) error                { return nil }
func (Noop) InvalidateVoucher(context.Context, int64) error                  { return nil }
func (Noop) Close() error                                                    { return nil }
