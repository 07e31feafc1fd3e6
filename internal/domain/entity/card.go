package entity

import (
	"time"

	"github.com/google/uuid"
)

// Card represents a credit card payment instrument. Only the billing-cycle
// configuration is modelled here; card CRUD lives outside this service.
type Card struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string

	// ClosingDay is the day of month the billing cycle closes, DueDay the
	// day of month the invoice is due. Both are raw day numbers (1-31),
	// compared as such regardless of month length.
	ClosingDay int
	DueDay     int

	CreatedAt time.Time
	UpdatedAt time.Time
}
