// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Ledger entry domain errors.
var (
	// ErrEntryNotFound is returned when a ledger entry is not found.
	ErrEntryNotFound = errors.New("ledger entry not found")

	// ErrNotAuthorizedToModifyEntry is returned when the user does not own the entry.
	ErrNotAuthorizedToModifyEntry = errors.New("not authorized to modify ledger entry")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidCondition is returned when the entry condition is invalid.
	ErrInvalidCondition = errors.New("invalid condition")

	// ErrInvalidPaymentMethod is returned when the payment method is invalid.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidPeriod is returned when a period string is not "YYYY-MM".
	ErrInvalidPeriod = errors.New("invalid period format")

	// ErrInvalidInstallmentCount is returned when the requested count is below one.
	ErrInvalidInstallmentCount = errors.New("installment count must be at least 1")

	// ErrInvalidEntryAmount is returned when the entry amount is invalid.
	ErrInvalidEntryAmount = errors.New("invalid entry amount")

	// ErrInvalidEntryDate is returned when a required date is missing or malformed.
	ErrInvalidEntryDate = errors.New("invalid entry date")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrNotesTooLong is returned when the notes exceed the maximum length.
	ErrNotesTooLong = errors.New("notes too long")

	// ErrEmptyEntryIDs is returned when an empty list of entry IDs is provided.
	ErrEmptyEntryIDs = errors.New("entry IDs list cannot be empty")

	// ErrEntryIDsNotFound is returned when one or more entry IDs are not found.
	ErrEntryIDsNotFound = errors.New("one or more ledger entries not found")

	// ErrCardNotFound is returned when the referenced card does not exist.
	ErrCardNotFound = errors.New("card not found")

	// ErrConcurrentModification is returned when a commit-time conflict is
	// detected. Callers are expected to re-fetch and retry.
	ErrConcurrentModification = errors.New("ledger entry was modified concurrently")
)

// EntryErrorCode defines error codes for ledger entry errors.
// Format: LED-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType  EntryErrorCode = "LED-010001"
	ErrCodeInvalidCondition        EntryErrorCode = "LED-010002"
	ErrCodeInvalidPaymentMethod    EntryErrorCode = "LED-010003"
	ErrCodeInvalidPeriod           EntryErrorCode = "LED-010004"
	ErrCodeInvalidInstallmentCount EntryErrorCode = "LED-010005"
	ErrCodeInvalidEntryAmount      EntryErrorCode = "LED-010006"
	ErrCodeDescriptionTooLong      EntryErrorCode = "LED-010007"
	ErrCodeNotesTooLong            EntryErrorCode = "LED-010008"
	ErrCodeMissingEntryFields      EntryErrorCode = "LED-010009"
	ErrCodeInvalidEntryDate        EntryErrorCode = "LED-010010"
	ErrCodeEmptyEntryIDs           EntryErrorCode = "LED-010011"

	// Lookup/ownership errors (02XXXX)
	ErrCodeEntryNotFound      EntryErrorCode = "LED-020001"
	ErrCodeNotAuthorizedEntry EntryErrorCode = "LED-020002"
	ErrCodeEntryIDsNotFound   EntryErrorCode = "LED-020003"
	ErrCodeCardNotFound       EntryErrorCode = "LED-020004"

	// Concurrency errors (03XXXX)
	ErrCodeConcurrentModification EntryErrorCode = "LED-030001"
)

// EntryError represents a ledger entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsRetryable reports whether the error is a commit-time conflict the caller
// may retry after re-fetching.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConcurrentModification)
}
