package entry

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/openmonetis/backend/internal/application/adapter"
	"github.com/openmonetis/backend/internal/domain/entity"
	domainerror "github.com/openmonetis/backend/internal/domain/error"
)

// UpdateEntryInput represents the input for updating one ledger entry.
type UpdateEntryInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
	Patch   adapter.EntryPatch
}

// UpdateEntryOutput represents the updated entry.
type UpdateEntryOutput struct {
	Entry *entity.LedgerEntry
}

// UpdateEntryUseCase applies a mutable-field patch to a single ledger entry.
// Fields encoding series identity or position cannot be changed here; those
// go through the series operations.
type UpdateEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(entryRepo adapter.EntryRepository) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the update.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	if input.Patch.IsEmpty() {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeMissingEntryFields,
			"no fields to update",
			nil,
		)
	}

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

	count, err := uc.entryRepo.UpdateMany(ctx, []uuid.UUID{input.EntryID}, input.UserID, input.Patch)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeConcurrentModification,
			"ledger entry was modified concurrently",
			domainerror.ErrConcurrentModification,
		)
	}

	updated, err := uc.entryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		return nil, err
	}

	return &UpdateEntryOutput{Entry: updated}, nil
}
