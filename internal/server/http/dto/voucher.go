package dto

import "time"

// VoucherRequest describes catalogue create and update payloads.
type VoucherRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	PointsRequired int64  `json:"points_required"`
	Quantity       int64  `json:"quantity"`
	Status         string `json:"status"`
}

// VoucherResponse describes a catalogue entry.
type VoucherResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PointsRequired int64     `json:"points_required"`
	Quantity       int64     `json:"quantity"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
