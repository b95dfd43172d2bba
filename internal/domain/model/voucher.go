package model

import "time"

// VoucherStatus tells whether a voucher is shown in the public catalogue.
type VoucherStatus string

const (
	VoucherStatusActive   VoucherStatus = "active"
	VoucherStatusInactive VoucherStatus = "inactive"
)

// Valid reports whether status is a known value.
func (s VoucherStatus) Valid() bool {
	return s == VoucherStatusActive || s == VoucherStatusInactive
}

// Voucher is a redeemable reward with a point cost and finite stock.
type Voucher struct {
	ID             int64         `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	PointsRequired int64         `json:"points_required"`
	Quantity       int64         `json:"quantity"`
	Status         VoucherStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
}
