package dto

// GrantRequest describes a point grant submitted by an earning flow.
type GrantRequest struct {
	UserID   int64  `json:"user_id"`
	Points   int64  `json:"points"`
	LogType  string `json:"log_type"`
	Reason   string `json:"reason"`
	SourceID int64  `json:"source_id"`
}

// GrantResponse describes a queued grant.
type GrantResponse struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	Points  int64  `json:"points"`
	LogType string `json:"log_type"`
	Status  string `json:"status"`
}
