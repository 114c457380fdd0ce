package service

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors controllers map to HTTP statuses.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrAlreadyAttempted   = errors.New("exam already attempted")
	ErrWindowNotOpen      = errors.New("exam has not started yet")
	ErrWindowClosed       = errors.New("exam window has closed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrSiteCodeUnknown    = errors.New("unknown site code")
	ErrPostIncomplete     = errors.New("post needs a title and content")
	ErrInvalidOption      = errors.New("selected option is out of range")
	ErrSessionNotActive   = errors.New("session is not in progress")
)

// ContentError carries the per-row failures of a rejected upload. Truncated
// is set when the row-error list was cut at the display bound.
type ContentError struct {
	Rows      []string
	Truncated bool
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("content rejected: %s", strings.Join(e.Rows, "; "))
}
