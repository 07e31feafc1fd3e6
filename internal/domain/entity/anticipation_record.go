package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnticipationRecord links an anticipation event to the installments it
// consumed. It is created once per anticipation and is immutable afterwards;
// the only way to undo it is the reversal operation, which deletes it.
type AnticipationRecord struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	SeriesID uuid.UUID

	// AnticipationPeriod is the "YYYY-MM" period the settlement entry is
	// attributed to.
	AnticipationPeriod string

	// ConsumedEntryIDs lists the folded installments in ascending ordinal
	// order. SettlementEntryID points at the standalone entry that replaced
	// them.
	ConsumedEntryIDs  []uuid.UUID
	SettlementEntryID uuid.UUID

	// Optional caller overrides applied to the settlement entry.
	PayerID    *uuid.UUID
	CategoryID *uuid.UUID
	Note       string

	CreatedAt time.Time
}

// NewAnticipationRecord creates a new AnticipationRecord entity.
func NewAnticipationRecord(
	userID uuid.UUID,
	seriesID uuid.UUID,
	anticipationPeriod string,
	consumedEntryIDs []uuid.UUID,
	settlementEntryID uuid.UUID,
	payerID *uuid.UUID,
	categoryID *uuid.UUID,
	note string,
) *AnticipationRecord {
	return &AnticipationRecord{
		ID:                 uuid.New(),
		UserID:             userID,
		SeriesID:           seriesID,
		AnticipationPeriod: anticipationPeriod,
		ConsumedEntryIDs:   consumedEntryIDs,
		SettlementEntryID:  settlementEntryID,
		PayerID:            payerID,
		CategoryID:         categoryID,
		Note:               note,
		CreatedAt:          time.Now().UTC(),
	}
}
