// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openmonetis/backend/internal/domain/entity"
)

// EntryFilter defines filter options for listing ledger entries.
type EntryFilter struct {
	UserID        uuid.UUID
	Period        string // "YYYY-MM"; empty means all periods
	SeriesID      *uuid.UUID
	PaymentMethod *entity.PaymentMethod
	Condition     *entity.Condition
	Type          *entity.TransactionType
	OnlyOpen      bool // Excludes settled and anticipated entries
	Search        string
}

// EntryPagination defines pagination options.
type EntryPagination struct {
	Page  int
	Limit int
}

// EntryListResult represents the result of listing ledger entries.
type EntryListResult struct {
	Entries    []*entity.LedgerEntry
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// EntryPatch carries the mutable fields a bulk edit may copy to every member
// of a resolved scope. Fields encoding series identity or position
// (ordinal, series ID, condition, purchase date, period) are deliberately
// absent; only series-level operations may touch those.
type EntryPatch struct {
	Description   *string
	Amount        *decimal.Decimal
	CategoryID    *uuid.UUID
	ClearCategory bool
	PayerID       *uuid.UUID
	AccountID     *uuid.UUID
	CardID        *uuid.UUID
	Notes         *string
	DueDate       *time.Time
}

// IsEmpty reports whether the patch carries no field changes.
func (p EntryPatch) IsEmpty() bool {
	return p.Description == nil &&
		p.Amount == nil &&
		p.CategoryID == nil &&
		!p.ClearCategory &&
		p.PayerID == nil &&
		p.AccountID == nil &&
		p.CardID == nil &&
		p.Notes == nil &&
		p.DueDate == nil
}

// EntryRepository defines the interface for ledger entry persistence.
// Multi-row operations are transactional: a partial batch must never be
// observable.
type EntryRepository interface {
	// CreateBatch persists all entries as a single atomic batch.
	CreateBatch(ctx context.Context, entries []*entity.LedgerEntry) error

	// FindByID retrieves a ledger entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error)

	// FindBySeriesID retrieves all entries sharing a series ID for a user,
	// ordered by ascending installment ordinal.
	FindBySeriesID(ctx context.Context, seriesID uuid.UUID, userID uuid.UUID) ([]*entity.LedgerEntry, error)

	// FindByFilter retrieves entries based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter EntryFilter, pagination EntryPagination) (*EntryListResult, error)

	// Update updates an existing entry.
	Update(ctx context.Context, entry *entity.LedgerEntry) error

	// UpdateMany applies the same patch to every listed entry in one atomic
	// transaction. Returns the count of updated entries.
	UpdateMany(ctx context.Context, ids []uuid.UUID, userID uuid.UUID, patch EntryPatch) (int64, error)

	// DeleteMany soft-deletes the listed entries in one atomic transaction.
	// Returns the count of deleted entries.
	DeleteMany(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) (int64, error)

	// ExistsAllByIDsAndUser checks that every listed entry exists and
	// belongs to the user.
	ExistsAllByIDsAndUser(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) (bool, error)
}
