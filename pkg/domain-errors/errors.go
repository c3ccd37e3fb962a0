// Package domainerrors provides coded errors for domain and service layers.
//
// Stores return sentinel errors (pkg/platform/sentinel) for infrastructure
// facts; services translate those into coded errors so transport layers can
// map them onto HTTP statuses without inspecting error strings.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies an error for boundary translation.
type Code string

const (
	// CodeInvalidInput marks malformed values rejected at a trust boundary.
	CodeInvalidInput Code = "invalid_input"
	// CodeBadRequest marks caller-fixable requests (missing fields, dangling references).
	CodeBadRequest Code = "bad_request"
	// CodeNotFound marks requests for entities that do not exist.
	CodeNotFound Code = "not_found"
	// CodeConflict marks requests that lost a uniqueness or state race.
	CodeConflict Code = "conflict"
	// CodeInvariantViolation marks domain rule breaches detected by model code.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeInternal marks unexpected faults in storage or downstream systems.
	CodeInternal Code = "internal_error"
)

// Error is a coded domain error. Message is safe to show to callers for
// every code except CodeInternal, where transport decides.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a coded error with a caller-facing message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error, preserving the
// chain for errors.Is / errors.As.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Is is an alias for HasCode kept for call-site readability.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf returns the code of the outermost coded error, or CodeInternal when
// the error carries no code.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
