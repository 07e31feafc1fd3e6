package error

import "errors"

// Series and bulk-scope domain errors.
var (
	// ErrInvalidBulkScope is returned when the scope selector is not one of
	// current, future or all.
	ErrInvalidBulkScope = errors.New("invalid bulk scope")

	// ErrSeriesNotFound is returned when no entries share the given series ID.
	ErrSeriesNotFound = errors.New("series not found")

	// ErrEmptyBulkPatch is returned when a bulk edit carries no field changes.
	ErrEmptyBulkPatch = errors.New("bulk edit patch cannot be empty")
)

// SeriesErrorCode defines error codes for series operations.
// Format: SER-XXYYYY where XX is category and YYYY is specific error.
type SeriesErrorCode string

const (
	ErrCodeInvalidBulkScope SeriesErrorCode = "SER-010001"
	ErrCodeEmptyBulkPatch   SeriesErrorCode = "SER-010002"
	ErrCodeSeriesNotFound   SeriesErrorCode = "SER-020001"
)

// SeriesError represents a series operation error with code and message.
type SeriesError struct {
	Code    SeriesErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SeriesError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SeriesError) Unwrap() error {
	return e.Err
}

// NewSeriesError creates a new SeriesError with the given code and message.
func NewSeriesError(code SeriesErrorCode, message string, err error) *SeriesError {
	return &SeriesError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
