package models

// ErrorResponse is the standard JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreatedResponse is returned by create endpoints.
type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// MessageResponse is returned by update/delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
