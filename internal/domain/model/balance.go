package model

// BalanceSummary aggregates current, earned and redeemed points of a user.
type BalanceSummary struct {
	UserID   int64 `json:"user_id"`
	Current  int64 `json:"current"`
	Earned   int64 `json:"earned"`
	Redeemed int64 `json:"redeemed"`
}
