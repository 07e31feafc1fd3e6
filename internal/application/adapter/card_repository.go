package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/openmonetis/backend/internal/domain/entity"
)

// CardRepository defines the read-side interface for card master data. Card
// CRUD is owned by the surrounding application; this service only needs the
// billing-cycle configuration to derive periods.
type CardRepository interface {
	// FindByID retrieves a card by ID with ownership check.
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Card, error)
}
