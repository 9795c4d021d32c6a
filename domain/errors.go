package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors.
var (
	ErrUserNotFound    = NewError(ErrCodeNotFound, "user not found")
	ErrEnteNotFound    = NewError(ErrCodeNotFound, "ente not found")
	ErrOICNotFound     = NewError(ErrCodeNotFound, "oic not found")
	ErrAcuerdoNotFound = NewError(ErrCodeNotFound, "acuerdo not found")
	ErrStatsNotCached  = NewError(ErrCodeNotFound, "stats not cached")

	// ErrInvalidCredentials carries the single generic message returned for
	// every login failure: unknown email, wrong password and inactive
	// account are externally indistinguishable.
	ErrInvalidCredentials = NewError(ErrCodeUnauthorized, "invalid credentials")
	ErrUnauthenticated    = NewError(ErrCodeUnauthorized, "unauthenticated")
	ErrForbidden          = NewError(ErrCodeForbidden, "insufficient role")

	ErrInvalidRole    = NewError(ErrCodeInvalid, "invalid role")
	ErrInvalidPayload = NewError(ErrCodeInvalid, "invalid payload")
	ErrEmailTaken     = NewError(ErrCodeConflict, "email already registered")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
