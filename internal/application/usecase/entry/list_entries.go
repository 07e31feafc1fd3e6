// Package entry contains the ledger entry read use cases.
package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/openmonetis/backend/internal/application/adapter"
	"github.com/openmonetis/backend/internal/domain/entity"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// ListEntriesInput represents the input for listing ledger entries.
type ListEntriesInput struct {
	UserID        uuid.UUID
	Period        string
	SeriesID      *uuid.UUID
	PaymentMethod *entity.PaymentMethod
	Condition     *entity.Condition
	Type          *entity.TransactionType
	OnlyOpen      bool
	Search        string
	Page          int
	Limit         int
}

// ListEntriesOutput represents the result of listing ledger entries.
type ListEntriesOutput struct {
	Entries    []*entity.LedgerEntry
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListEntriesUseCase lists ledger entries with filters and pagination.
type ListEntriesUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.EntryRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the listing.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	result, err := uc.entryRepo.FindByFilter(ctx, adapter.EntryFilter{
		UserID:        input.UserID,
		Period:        input.Period,
		SeriesID:      input.SeriesID,
		PaymentMethod: input.PaymentMethod,
		Condition:     input.Condition,
		Type:          input.Type,
		OnlyOpen:      input.OnlyOpen,
		Search:        input.Search,
	}, adapter.EntryPagination{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return &ListEntriesOutput{
		Entries:    result.Entries,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}, nil
}
