package model

import "time"

// User represents a citizen taking part in the points programme.
type User struct {
	ID            int64
	Name          string
	PointsBalance int64
	CreatedAt     time.Time
}
