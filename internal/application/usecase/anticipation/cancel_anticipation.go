package anticipation

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/openmonetis/backend/internal/application/adapter"
	domainerror "github.com/openmonetis/backend/internal/domain/error"
)

// CancelAnticipationInput represents the input for reversing an anticipation.
type CancelAnticipationInput struct {
	UserID         uuid.UUID
	AnticipationID uuid.UUID
}

// CancelAnticipationOutput represents the result of a reversal.
type CancelAnticipationOutput struct {
	RestoredEntryIDs []uuid.UUID
}

// CancelAnticipationUseCase reverses an anticipation: the settlement entry is
// deleted, the consumed installments return to the open set and the record is
// removed. Reversal is refused once the settlement entry has been paid.
type CancelAnticipationUseCase struct {
	anticipationRepo adapter.AnticipationRepository
}

// NewCancelAnticipationUseCase creates a new CancelAnticipationUseCase instance.
func NewCancelAnticipationUseCase(anticipationRepo adapter.AnticipationRepository) *CancelAnticipationUseCase {
	return &CancelAnticipationUseCase{
		anticipationRepo: anticipationRepo,
	}
}

// Execute performs the reversal.
func (uc *CancelAnticipationUseCase) Execute(ctx context.Context, input CancelAnticipationInput) (*CancelAnticipationOutput, error) {
	record, err := uc.anticipationRepo.FindByID(ctx, input.AnticipationID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAnticipationNotFound) {
			return nil, domainerror.NewAnticipationError(
				domainerror.ErrCodeAnticipationNotFound,
				"anticipation record not found",
				domainerror.ErrAnticipationNotFound,
			)
		}
		return nil, err
	}

	if err := uc.anticipationRepo.DeleteWithReversal(ctx, record); err != nil {
		if errors.Is(err, domainerror.ErrAnticipationAlreadyPaid) {
			return nil, domainerror.NewAnticipationError(
				domainerror.ErrCodeAnticipationAlreadyPaid,
				"anticipation settlement was already paid",
				domainerror.ErrAnticipationAlreadyPaid,
			)
		}
		return nil, err
	}

	return &CancelAnticipationOutput{
		RestoredEntryIDs: record.ConsumedEntryIDs,
	}, nil
}
