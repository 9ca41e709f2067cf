package model

// Response is the uniform envelope returned by every endpoint.
type Response struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
}
