package dto

import "time"

// UserRequest describes the user registration payload.
type UserRequest struct {
	Name string `json:"name"`
}

// UserResponse describes a registered user.
type UserResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	PointsBalance int64     `json:"points_balance"`
	CreatedAt     time.Time `json:"created_at"`
}
