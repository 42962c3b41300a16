// Package errors provides structured error handling for cointoss.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// CodeInvalidParameter covers every precondition violation: non-positive
	// population sizes, negative trial counts, unusable precision and
	// malformed sweep ranges.
	CodeInvalidParameter Code = "INVALID_PARAMETER"
)
