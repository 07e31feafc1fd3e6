package entry

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/openmonetis/backend/internal/application/adapter"
	domainerror "github.com/openmonetis/backend/internal/domain/error"
)

// DeleteEntryInput represents the input for deleting one ledger entry.
type DeleteEntryInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
}

// DeleteEntryUseCase soft-deletes a single ledger entry with ownership check.
type DeleteEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(entryRepo adapter.EntryRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) error {
	e, err := uc.entryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"ledger entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return err
	}

	// Ownership failures report not-found so entry IDs cannot be probed.
	if e.UserID != input.UserID {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotFound,
			"ledger entry not found",
			domainerror.ErrEntryNotFound,
		)
	}

	count, err := uc.entryRepo.DeleteMany(ctx, []uuid.UUID{input.EntryID}, input.UserID)
	if err != nil {
		return err
	}
	if count == 0 {
		return domainerror.NewEntryError(
			domainerror.ErrCodeConcurrentModification,
			"ledger entry was modified concurrently",
			domainerror.ErrConcurrentModification,
		)
	}

	return nil
}
