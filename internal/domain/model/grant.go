package model

import "time"

// GrantStatus describes crediting lifecycle of a point grant.
type GrantStatus string

const (
	GrantStatusPending    GrantStatus = "PENDING"
	GrantStatusProcessing GrantStatus = "PROCESSING"
	GrantStatusCredited   GrantStatus = "CREDITED"
	GrantStatusRejected   GrantStatus = "REJECTED"
)

// Grant is a queued balance increase produced by pickups, donations or feedback.
type Grant struct {
	ID         int64
	UserID     int64
	Points     int64
	LogType    LogType
	Reason     string
	SourceID   int64
	Status     GrantStatus
	CreatedAt  time.Time
	CreditedAt *time.Time
}
