package errors

import "fmt"

// InvalidParameter matches, via errors.Is, any error carrying
// CodeInvalidParameter.
var InvalidParameter = &Error{Code: CodeInvalidParameter, Message: "invalid parameter"}

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Internal message (for logs/telemetry)
	Metadata map[string]string // Offending parameter and value, when known
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Invalid wraps a sentinel parameter error with the offending value so the
// message names it while errors.Is still matches the sentinel.
func Invalid(sentinel error, param string, value any) *Error {
	return &Error{
		Code:     CodeInvalidParameter,
		Message:  fmt.Sprintf("%s: %s=%v", sentinel.Error(), param, value),
		Metadata: map[string]string{"param": param, "value": fmt.Sprint(value)},
		Cause:    sentinel,
	}
}
