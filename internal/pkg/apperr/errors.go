package apperr

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the facade or the repositories
// matches exactly one of them through errors.Is.
var (
	ErrNotFound     = errors.New("not_found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid_input")
	ErrForbidden    = errors.New("forbidden")

	// ErrUnauthenticated means the caller's identity could not be
	// established, such as a failed login.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Error carries a kind plus a human readable message. Field names the
// offending attribute for InvalidInput errors.
type Error struct {
	Kind    error
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...any) *Error {
	return &Error{Kind: ErrForbidden, Message: fmt.Sprintf(format, args...)}
}

func Unauthenticated(format string, args ...any) *Error {
	return &Error{Kind: ErrUnauthenticated, Message: fmt.Sprintf(format, args...)}
}

// Invalid reports a field that failed its entity invariant.
func Invalid(field, format string, args ...any) *Error {
	return &Error{Kind: ErrInvalidInput, Field: field, Message: fmt.Sprintf(format, args...)}
}

// Message returns the human readable part of err when it is an *Error,
// and err.Error() otherwise.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Field != "" {
			return e.Field + ": " + e.Message
		}
		return e.Message
	}
	return err.Error()
}

// FieldOf returns the offending field of an InvalidInput error, if any.
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}
