package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrOutOfStock          = errors.New("voucher out of stock")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrStore               = errors.New("store error")
	ErrRedemptionCompleted = errors.New("redemption already completed")
	ErrInvalidCouponCode   = errors.New("invalid coupon code")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidVoucher      = errors.New("invalid voucher")
	ErrInvalidUser         = errors.New("invalid user")
	ErrInvalidGrant        = errors.New("invalid grant")
)

// InsufficientBalanceError reports how many points a redemption needed.
type InsufficientBalanceError struct {
	Required  int64
	Available int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %d, available %d", e.Required, e.Available)
}

// Is lets errors.Is match ErrInsufficientBalance.
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// Store wraps an infrastructure failure so it matches ErrStore and keeps the cause.
// Domain errors pass through unchanged.
func Store(op string, err error) error {
	if err == nil || IsDomain(err) || errors.Is(err, ErrStore) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
}

// IsDomain reports whether err is a business rejection rather than a store failure.
func IsDomain(err error) bool {
	for _, target := range []error{
		ErrNotFound,
		ErrOutOfStock,
		ErrInsufficientBalance,
		ErrRedemptionCompleted,
		ErrInvalidCouponCode,
		ErrInvalidAmount,
		ErrInvalidVoucher,
		ErrInvalidUser,
		ErrInvalidGrant,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
