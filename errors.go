package titulares

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be a coarse classification of errors so that callers
// (and tests) can branch on the kind of failure without string matching.
const (
	EINVALID     = "invalid"     // malformed input (undecodable or unparsable document)
	ENOTFOUND    = "not_found"   // requested object does not exist
	EINTERNAL    = "internal"    // unexpected internal failure
	EUNAVAILABLE = "unavailable" // storage collaborator cannot be reached
	EUNSUPPORTED = "unsupported" // object matches no known source adapter
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("titulares error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns an empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns an empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper for constructing an *Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
