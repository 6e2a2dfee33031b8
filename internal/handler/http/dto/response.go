package dto

// MessageResponse is a generic response for success messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// DataResponse mirrors the {success, data} shape of the password reset endpoints.
type DataResponse struct {
	Success bool   `json:"success"`
	Data    string `json:"data"`
}
