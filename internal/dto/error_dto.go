package dto

// Error codes clients branch on. Anything unexpected maps to "generic".
const (
	ErrCodeAlreadyAttempted = "already_attempted"
	ErrCodeWindowNotOpen    = "window_not_open"
	ErrCodeWindowClosed     = "window_closed"
	ErrCodeGeneric          = "generic"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
