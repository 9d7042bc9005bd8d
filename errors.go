package pagemeta

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are mapped to user-facing failure categories at the CLI boundary.
const (
	EINVALID     = "invalid"     // input URL is not a valid absolute URL
	ETIMEOUT     = "timeout"     // no response within the fetch window
	EUNREACHABLE = "unreachable" // connection-level failure (dial, DNS)
	ENORESPONSE  = "no_response" // request sent but no usable response
	EUPSTREAM    = "upstream"    // target responded with a non-success status
	EINTERNAL    = "internal"    // unclassified failure
)

// Error represents an application error with a machine-readable code and a
// human-readable message. StatusCode carries the upstream HTTP status for
// EUPSTREAM errors and is zero otherwise.
type Error struct {
	Code       string
	Message    string
	StatusCode int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pagemeta error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns a new Error with the given code and formatted message.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// StatusErrorf returns an EUPSTREAM Error carrying the upstream HTTP status.
func StatusErrorf(statusCode int, format string, args ...interface{}) *Error {
	return &Error{
		Code:       EUPSTREAM,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: statusCode,
	}
}

// ErrorCode returns the code of the error, EINTERNAL for non-application
// errors, or an empty string when err is nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the error, a generic message for
// non-application errors, or an empty string when err is nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// ErrorStatus returns the upstream HTTP status carried by the error, or
// zero when the error carries none.
func ErrorStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
