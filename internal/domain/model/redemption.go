package model

import "time"

// RedemptionStatus describes redemption lifecycle.
type RedemptionStatus string

const (
	RedemptionStatusPending   RedemptionStatus = "pending"
	RedemptionStatusCompleted RedemptionStatus = "completed"
)

// Redemption records one unit of a voucher exchanged for points.
type Redemption struct {
	ID          int64
	UserID      int64
	VoucherID   int64
	RequestDate time.Time
	Status      RedemptionStatus
	CouponCode  *string
}

// RedemptionFilter narrows admin listings. Zero values mean "any".
type RedemptionFilter struct {
	UserID int64
	Status RedemptionStatus
	Limit  uint64
}
