package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/openmonetis/backend/internal/domain/entity"
)

// AnticipationRepository persists anticipation records together with their
// settlement entries. Both operations span the ledger entry and anticipation
// tables and must run in a single database transaction.
type AnticipationRepository interface {
	// CreateWithSettlement atomically creates the settlement entry, flags
	// every consumed installment as anticipated and persists the record.
	// The anticipated/settled preconditions are re-validated inside the
	// transaction under row locks; a lost race surfaces as the matching
	// precondition error.
	CreateWithSettlement(ctx context.Context, record *entity.AnticipationRecord, settlement *entity.LedgerEntry) error

	// FindByID retrieves an anticipation record by ID with ownership check.
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.AnticipationRecord, error)

	// DeleteWithReversal atomically deletes the settlement entry, clears the
	// anticipated flag on every consumed installment and removes the record.
	// Fails with ErrAnticipationAlreadyPaid when the settlement entry has
	// been settled.
	DeleteWithReversal(ctx context.Context, record *entity.AnticipationRecord) error
}
