package series

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/openmonetis/backend/internal/application/adapter"
	domainerror "github.com/openmonetis/backend/internal/domain/error"
)

// ApplyBulkEditInput represents a scoped field edit against one member of a
// series. The patch carries only the mutable fields; series identity and
// position fields can never be edited this way.
type ApplyBulkEditInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
	Scope   BulkScope
	Patch   adapter.EntryPatch
}

// ApplyBulkEditOutput represents the result of a scoped bulk edit.
type ApplyBulkEditOutput struct {
	EntryIDs     []uuid.UUID
	UpdatedCount int64
	Degenerate   bool
}

// ApplyBulkEditUseCase resolves the scope and applies the same patch to
// every resolved entry in one atomic transaction.
type ApplyBulkEditUseCase struct {
	entryRepo adapter.EntryRepository
	resolver  *ResolveScopeUseCase
}

// NewApplyBulkEditUseCase creates a new ApplyBulkEditUseCase instance.
func NewApplyBulkEditUseCase(entryRepo adapter.EntryRepository) *ApplyBulkEditUseCase {
	return &ApplyBulkEditUseCase{
		entryRepo: entryRepo,
		resolver:  NewResolveScopeUseCase(entryRepo),
	}
}

// Execute performs the scoped bulk edit.
func (uc *ApplyBulkEditUseCase) Execute(ctx context.Context, input ApplyBulkEditInput) (*ApplyBulkEditOutput, error) {
	if input.Patch.IsEmpty() {
		return nil, domainerror.NewSeriesError(
			domainerror.ErrCodeEmptyBulkPatch,
			"bulk edit requires at least one field change",
			domainerror.ErrEmptyBulkPatch,
		)
	}

	resolved, err := uc.resolver.Execute(ctx, ResolveScopeInput{
		UserID:  input.UserID,
		EntryID: input.EntryID,
		Scope:   input.Scope,
	})
	if err != nil {
		return nil, err
	}

	// The resolver's read and this write are separate transactions by
	// design; the write itself is atomic across the resolved set.
	updated, err := uc.entryRepo.UpdateMany(ctx, resolved.EntryIDs, input.UserID, input.Patch)
	if err != nil {
		return nil, fmt.Errorf("failed to apply bulk edit: %w", err)
	}

	return &ApplyBulkEditOutput{
		EntryIDs:     resolved.EntryIDs,
		UpdatedCount: updated,
		Degenerate:   resolved.Degenerate,
	}, nil
}
