package domain

import (
	"errors"
	"fmt"
)

// Request validation errors, detected locally before any upstream call.
var (
	ErrViewNotFound = errors.New("unknown view identifier")
	ErrInvalidEmail = errors.New("malformed email identifier")
	ErrInvalidBody  = errors.New("malformed request body")
)

// Auth module errors.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrAuthUnavailable = errors.New("auth module unavailable")
)

// UpstreamError carries a client error reported by the auth module so the
// handler can return it with its original status and detail preserved.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("auth module returned status %d", e.StatusCode)
}
