package cache

import (
	"context"
	"errors"
	"strconv"

	"github.com/polkiloo/ecopoints/internal/domain/model"
)

// ErrMiss reports that the requested key is not cached.
var ErrMiss = errors.New("cache miss")

// Cache keeps read-mostly projections of the ledger close to the API.
type Cache interface {
	GetBalance(ctx context.Context, userID int64) (*model.BalanceSummary, error)
	SetBalance(ctx context.Context, summary *model.BalanceSummary) error
	InvalidateBalance(ctx context.Context, userID int64) error

	GetVoucher(ctx context.Context, voucherID int64) (*model.Voucher, error)
	SetVoucher(ctx context.Context, voucher *model.Voucher) error
	InvalidateVoucher(ctx context.Context, voucherID int64) error

	Close() error
}

const keyPrefix = "ecopoints:"

func balanceKey(userID int64) string {
	return keyPrefix + "balance:" + strconv.FormatInt(userID, 10)
}

func voucherKey(voucherID int64) string {
	return keyPrefix + "voucher:" + strconv.FormatInt(voucherID, 10)
}
