package models

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse wraps an arbitrary payload under the "message" key.
type MessageResponse struct {
	Message any `json:"message"`
}

// ErrorResponse is the stable machine-readable failure body.
// Code is a short identifier, Message is safe to show to end users.
type ErrorResponse struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}
