package model

import "time"

// LogType classifies points log entries.
type LogType string

const (
	LogTypeRedeemVoucher    LogType = "redeem_voucher"
	LogTypePickupCompleted  LogType = "pickup_completed"
	LogTypeClothingDonation LogType = "clothing_donation"
	LogTypeFeedbackReward   LogType = "feedback_reward"
	LogTypeAdjustment       LogType = "manual_adjustment"
)

// Earning reports whether entries of this type add points.
func (t LogType) Earning() bool {
	switch t {
	case LogTypePickupCompleted, LogTypeClothingDonation, LogTypeFeedbackReward, LogTypeAdjustment:
		return true
	}
	return false
}

// PointsLogEntry is an immutable audit record of a balance change.
type PointsLogEntry struct {
	ID          int64
	UserID      int64
	PointsDelta int64
	LogType     LogType
	Reason      string
	SourceID    int64
	CreatedAt   time.Time
}

// PointsLogFilter narrows audit listings. Zero values mean "any".
type PointsLogFilter struct {
	UserID  int64
	LogType LogType
	Limit   uint64
}
