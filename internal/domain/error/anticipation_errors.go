package error

import "errors"

// Anticipation domain errors.
var (
	// ErrAnticipationNotFound is returned when an anticipation record is not found.
	ErrAnticipationNotFound = errors.New("anticipation record not found")

	// ErrEmptyInstallmentIDs is returned when no installments were selected.
	ErrEmptyInstallmentIDs = errors.New("installment IDs list cannot be empty")

	// ErrInstallmentNotInSeries is returned when a selected installment does
	// not belong to the target series.
	ErrInstallmentNotInSeries = errors.New("installment does not belong to series")

	// ErrNotAnInstallment is returned when a selected entry is not an
	// installment-condition entry.
	ErrNotAnInstallment = errors.New("entry is not an installment")

	// ErrInstallmentAlreadyAnticipated is returned when a selected
	// installment was already consumed by another anticipation.
	ErrInstallmentAlreadyAnticipated = errors.New("installment already anticipated")

	// ErrInstallmentAlreadySettled is returned when a selected installment
	// has already been settled.
	ErrInstallmentAlreadySettled = errors.New("installment already settled")

	// ErrAnticipationAlreadyPaid is returned when reversal is attempted on an
	// anticipation whose settlement entry was already paid.
	ErrAnticipationAlreadyPaid = errors.New("anticipation settlement already paid")
)

// AnticipationErrorCode defines error codes for anticipation errors.
// Format: ANT-XXYYYY where XX is category and YYYY is specific error.
type AnticipationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyInstallmentIDs        AnticipationErrorCode = "ANT-010001"
	ErrCodeInvalidAnticipationPeriod  AnticipationErrorCode = "ANT-010002"

	// Precondition errors (02XXXX)
	ErrCodeInstallmentNotInSeries        AnticipationErrorCode = "ANT-020001"
	ErrCodeNotAnInstallment              AnticipationErrorCode = "ANT-020002"
	ErrCodeInstallmentAlreadyAnticipated AnticipationErrorCode = "ANT-020003"
	ErrCodeInstallmentAlreadySettled     AnticipationErrorCode = "ANT-020004"
	ErrCodeAnticipationNotFound          AnticipationErrorCode = "ANT-020005"
	ErrCodeAnticipationAlreadyPaid       AnticipationErrorCode = "ANT-020006"
)

// AnticipationError represents an anticipation error with code and message.
type AnticipationError struct {
	Code    AnticipationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnticipationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnticipationError) Unwrap() error {
	return e.Err
}

// NewAnticipationError creates a new AnticipationError with the given code and message.
func NewAnticipationError(code AnticipationErrorCode, message string, err error) *AnticipationError {
	return &AnticipationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
