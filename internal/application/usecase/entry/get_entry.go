package entry

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/openmonetis/backend/internal/application/adapter"
	"github.com/openmonetis/backend/internal/domain/entity"
	domainerror "github.com/openmonetis/backend/internal/domain/error"
)

// GetEntryInput represents the input for retrieving one ledger entry.
type GetEntryInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
}

// GetEntryOutput represents the retrieved entry.
type GetEntryOutput struct {
	Entry *entity.LedgerEntry
}

// GetEntryUseCase retrieves a single ledger entry with ownership check.
type GetEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewGetEntryUseCase creates a new GetEntryUseCase instance.
func NewGetEntryUseCase(entryRepo adapter.EntryRepository) *GetEntryUseCase {
	return &GetEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the retrieval.
func (uc *GetEntryUseCase) Execute(ctx context.Context, input GetEntryInput) (*GetEntryOutput, error) {
	e, err := uc.entryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"ledger entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return nil, err
	}

	// Ownership failures report not-found so entry IDs cannot be probed.
	if e.UserID != input.UserID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotFound,
			"ledger entry not found",
			domainerror.ErrEntryNotFound,
		)
	}

	return &GetEntryOutput{Entry: e}, nil
}
