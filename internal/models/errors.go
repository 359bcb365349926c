package models

// ErrorResponse is the body of every non-2xx response. The chat UI renders
// the Error string directly as an assistant message, so it must always be a
// plain sentence with no internal detail.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
