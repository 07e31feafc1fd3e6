package series

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/openmonetis/backend/internal/application/adapter"
)

// BulkDeleteInput represents a scoped delete against one member of a series.
type BulkDeleteInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
	Scope   BulkScope
}

// BulkDeleteOutput represents the result of a scoped bulk delete.
type BulkDeleteOutput struct {
	EntryIDs     []uuid.UUID
	DeletedCount int64
	Degenerate   bool
}

// BulkDeleteUseCase resolves the scope and deletes every resolved entry in
// one atomic transaction.
type BulkDeleteUseCase struct {
	entryRepo adapter.EntryRepository
	resolver  *ResolveScopeUseCase
}

// NewBulkDeleteUseCase creates a new BulkDeleteUseCase instance.
func NewBulkDeleteUseCase(entryRepo adapter.EntryRepository) *BulkDeleteUseCase {
	return &BulkDeleteUseCase{
		entryRepo: entryRepo,
		resolver:  NewResolveScopeUseCase(entryRepo),
	}
}

// Execute performs the scoped bulk delete.
func (uc *BulkDeleteUseCase) Execute(ctx context.Context, input BulkDeleteInput) (*BulkDeleteOutput, error) {
	resolved, err := uc.resolver.Execute(ctx, ResolveScopeInput{
		UserID:  input.UserID,
		EntryID: input.EntryID,
		Scope:   input.Scope,
	})
	if err != nil {
		return nil, err
	}

	deleted, err := uc.entryRepo.DeleteMany(ctx, resolved.EntryIDs, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to apply bulk delete: %w", err)
	}

	return &BulkDeleteOutput{
		EntryIDs:     resolved.EntryIDs,
		DeletedCount: deleted,
		Degenerate:   resolved.Degenerate,
	}, nil
}
