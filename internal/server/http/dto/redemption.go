package dto

import "time"

// RedeemRequest describes a voucher redemption payload.
type RedeemRequest struct {
	VoucherID int64 `json:"voucher_id"`
}

// FulfillRequest carries the coupon code issued for a redemption.
type FulfillRequest struct {
	CouponCode string `json:"coupon_code"`
}

// RedemptionResponse describes a redemption record.
type RedemptionResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	VoucherID   int64     `json:"voucher_id"`
	RequestDate time.Time `json:"request_date"`
	Status      string    `json:"status"`
	CouponCode  *string   `json:"coupon_code,omitempty"`
}
