package series

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/openmonetis/backend/internal/application/adapter"
	"github.com/openmonetis/backend/internal/domain/entity"
	domainerror "github.com/openmonetis/backend/internal/domain/error"
)

// BulkScope selects how far an edit or delete reaches across a series,
// relative to an anchor entry.
type BulkScope string

const (
	ScopeCurrent BulkScope = "current"
	ScopeFuture  BulkScope = "future"
	ScopeAll     BulkScope = "all"
)

// IsValidScope reports whether s is a known scope selector.
func IsValidScope(s BulkScope) bool {
	switch s {
	case ScopeCurrent, ScopeFuture, ScopeAll:
		return true
	}
	return false
}

// ResolveScopeInput represents the input for scope resolution.
type ResolveScopeInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID // Anchor entry
	Scope   BulkScope
}

// ResolveScopeOutput represents the resolved entry set, in ascending ordinal
// order. Degenerate is true when the anchor has no siblings to affect (a
// non-series entry or a series reduced to one member), so callers know not
// to offer a scope prompt at all.
type ResolveScopeOutput struct {
	SeriesID   *uuid.UUID
	EntryIDs   []uuid.UUID
	Entries    []*entity.LedgerEntry
	Degenerate bool
}

// ResolveScopeUseCase determines the exact sibling set a bulk operation
// affects. It never crosses series boundaries and never includes an
// anticipated installment unless it is the anchor itself.
type ResolveScopeUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewResolveScopeUseCase creates a new ResolveScopeUseCase instance.
func NewResolveScopeUseCase(entryRepo adapter.EntryRepository) *ResolveScopeUseCase {
	return &ResolveScopeUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the scope resolution.
func (uc *ResolveScopeUseCase) Execute(ctx context.Context, input ResolveScopeInput) (*ResolveScopeOutput, error) {
	if !IsValidScope(input.Scope) {
		return nil, domainerror.NewSeriesError(
			domainerror.ErrCodeInvalidBulkScope,
			"scope must be 'current', 'future' or 'all'",
			domainerror.ErrInvalidBulkScope,
		)
	}

	anchor, err := uc.entryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"ledger entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find anchor entry: %w", err)
	}

	if anchor.UserID != input.UserID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeNotAuthorizedEntry,
			"not authorized to modify this entry",
			domainerror.ErrNotAuthorizedToModifyEntry,
		)
	}

	if anchor.SeriesID == nil {
		return singletonScope(anchor), nil
	}

	siblings, err := uc.entryRepo.FindBySeriesID(ctx, *anchor.SeriesID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate series members: %w", err)
	}

	// A series reduced to a single surviving member behaves like a
	// non-series entry, whatever scope was requested.
	if len(siblings) <= 1 {
		return singletonScope(anchor), nil
	}

	selected := make([]*entity.LedgerEntry, 0, len(siblings))
	for _, sibling := range siblings {
		if !uc.inScope(anchor, sibling, input.Scope) {
			continue
		}
		selected = append(selected, sibling)
	}

	ids := make([]uuid.UUID, len(selected))
	for i, e := range selected {
		ids[i] = e.ID
	}

	return &ResolveScopeOutput{
		SeriesID: anchor.SeriesID,
		EntryIDs: ids,
		Entries:  selected,
	}, nil
}

// inScope decides membership for one sibling. Siblings already consumed by
// an anticipation are frozen history and stay untouched unless the caller
// anchored on one directly.
func (uc *ResolveScopeUseCase) inScope(anchor, sibling *entity.LedgerEntry, scope BulkScope) bool {
	if sibling.ID == anchor.ID {
		return true
	}
	if sibling.IsAnticipated {
		return false
	}

	switch scope {
	case ScopeCurrent:
		return false
	case ScopeAll:
		return true
	case ScopeFuture:
		if anchor.InstallmentCurrent == nil || sibling.InstallmentCurrent == nil {
			return false
		}
		return *sibling.InstallmentCurrent > *anchor.InstallmentCurrent
	}
	return false
}

func singletonScope(anchor *entity.LedgerEntry) *ResolveScopeOutput {
	return &ResolveScopeOutput{
		SeriesID:   anchor.SeriesID,
		EntryIDs:   []uuid.UUID{anchor.ID},
		Entries:    []*entity.LedgerEntry{anchor},
		Degenerate: true,
	}
}
