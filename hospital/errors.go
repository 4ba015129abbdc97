package hospital

import (
	"errors"
	"fmt"
)

// Error codes, used by callers to branch on failure kind without
// matching message text.
const (
	CodeConflict     = "CONFLICT"
	CodeNotEligible  = "NOT_ELIGIBLE"
	CodeNotFound     = "NOT_FOUND"
	CodeInvalid      = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL_ERROR"
)

// Error is the domain error type: a code for programmatic handling, a
// human-readable message and an optional wrapped cause.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Conflict reports a state collision, e.g. an occupied room or a taken
// email.
func Conflict(format string, args ...any) *Error {
	return &Error{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

// NotEligible reports a lifecycle transition the entity's current state
// does not permit.
func NotEligible(format string, args ...any) *Error {
	return &Error{Code: CodeNotEligible, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports a lookup miss.
func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Invalid reports malformed or out-of-range input.
func Invalid(format string, args ...any) *Error {
	return &Error{Code: CodeInvalid, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized reports a failed credential check.
func Unauthorized(msg string) *Error {
	return &Error{Code: CodeUnauthorized, Message: msg}
}

// Internal wraps an unexpected failure from a lower layer.
func Internal(msg string, err error) *Error {
	return &Error{Code: CodeInternal, Message: msg, Err: err}
}

// HasCode reports whether err is (or wraps) a domain error with the
// given code.
func HasCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
