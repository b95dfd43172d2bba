package dto

// ErrorResponse is returned for rejected requests.
type ErrorResponse struct {
	Error     string `json:"error"`
	Required  *int64 `json:"required,omitempty"`
	Available *int64 `json:"available,omitempty"`
}
