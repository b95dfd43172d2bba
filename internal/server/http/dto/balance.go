package dto

import "time"

// BalanceResponse represents the points summary of a user.
type BalanceResponse struct {
	UserID   int64 `json:"user_id"`
	Current  int64 `json:"current"`
	Earned   int64 `json:"earned"`
	Redeemed int64 `json:"redeemed"`
}

// PointsLogResponse describes one points log entry.
type PointsLogResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	PointsDelta int64     `json:"points_delta"`
	LogType     string    `json:"log_type"`
	Reason      string    `json:"reason"`
	SourceID    int64     `json:"source_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
