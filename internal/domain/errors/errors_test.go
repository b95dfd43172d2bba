package errors

import (
	"context"
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"out of stock", ErrOutOfStock},
		{"insufficient balance", ErrInsufficientBalance},
		{"store", ErrStore},
		{"completed", ErrRedemptionCompleted},
		{"coupon", ErrInvalidCouponCode},
		{"amount", ErrInvalidAmount},
		{"voucher", ErrInvalidVoucher},
		{"user", ErrInvalidUser},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	var err error = &InsufficientBalanceError{Required: 40, Available: 10}
	if !stdErrors.Is(err, ErrInsufficientBalance) {
		t.Fatal("expected match with ErrInsufficientBalance")
	}
	if stdErrors.Is(err, ErrOutOfStock) {
		t.Fatal("unexpected match with ErrOutOfStock")
	}
	if err.Error() != "insufficient balance: required 40, available 10" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	wrapped := fmt.Errorf("redeem: %w", err)
	var target *InsufficientBalanceError
	if !stdErrors.As(wrapped, &target) || target.Required != 40 || target.Available != 10 {
		t.Fatalf("expected to unwrap details, got %+v", target)
	}
}

func TestStore(t *testing.T) {
	if Store("op", nil) != nil {
		t.Fatal("expected nil for nil error")
	}

	if err := Store("redeem", ErrOutOfStock); err != ErrOutOfStock {
		t.Fatalf("expected domain error unchanged, got %v", err)
	}

	err := Store("redeem", context.DeadlineExceeded)
	if !stdErrors.Is(err, ErrStore) {
		t.Fatalf("expected store error, got %v", err)
	}
	if !stdErrors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected cause to be preserved, got %v", err)
	}
	if again := Store("outer", err); again != err {
		t.Fatalf("expected already wrapped error unchanged, got %v", again)
	}
}

func TestIsDomain(t *testing.T) {
	if !IsDomain(fmt.Errorf("voucher 1: %w", ErrNotFound)) {
		t.Fatal("expected wrapped not found to be domain error")
	}
	if !IsDomain(&InsufficientBalanceError{}) {
		t.Fatal("expected insufficient balance to be domain error")
	}
	if IsDomain(ErrStore) {
		t.Fatal("store error is not a business rejection")
	}
	if IsDomain(stdErrors.New("boom")) {
		t.Fatal("unexpected domain classification")
	}
}
