package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/openmonetis/backend/internal/application/adapter"
	"github.com/openmonetis/backend/internal/domain/entity"
	domainerror "github.com/openmonetis/backend/internal/domain/error"
	"github.com/openmonetis/backend/internal/integration/persistence/model"
)

// anticipationRepository implements the adapter.AnticipationRepository interface.
type anticipationRepository struct {
	db *gorm.DB
}

// NewAnticipationRepository creates a new anticipation repository instance.
func NewAnticipationRepository(db *gorm.DB) adapter.AnticipationRepository {
	return &anticipationRepository{
		db: db,
	}
}

// CreateWithSettlement atomically creates the settlement entry, flags every
// consumed installment and persists the record. The use case validates the
// preconditions before calling; they are re-checked here under row locks so
// two concurrent anticipations of the same installment cannot both commit.
func (r *anticipationRepository) CreateWithSettlement(ctx context.Context, record *entity.AnticipationRecord, settlement *entity.LedgerEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&model.LedgerEntryModel{})
		// SELECT ... FOR UPDATE is postgres-only; sqlite serializes writes
		// on its own.
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var locked []model.LedgerEntryModel
		if err := query.
			Where("id IN ? AND user_id = ?", record.ConsumedEntryIDs, record.UserID).
			Find(&locked).Error; err != nil {
			return err
		}
		if len(locked) != len(record.ConsumedEntryIDs) {
			return domainerror.ErrInstallmentNotInSeries
		}
		for _, m := range locked {
			if m.IsAnticipated {
				return domainerror.ErrInstallmentAlreadyAnticipated
			}
			if m.IsSettled != nil && *m.IsSettled {
				return domainerror.ErrInstallmentAlreadySettled
			}
		}

		settlementModel := model.LedgerEntryFromEntity(settlement)
		if err := tx.Create(settlementModel).Error; err != nil {
			return err
		}

		result := tx.Model(&model.LedgerEntryModel{}).
			Where("id IN ? AND user_id = ?", record.ConsumedEntryIDs, record.UserID).
			Updates(map[string]interface{}{
				"is_anticipated": true,
				"updated_at":     time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}

		recordModel := model.AnticipationRecordFromEntity(record)
		return tx.Create(recordModel).Error
	})
}

// FindByID retrieves an anticipation record by ID with ownership check.
func (r *anticipationRepository) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.AnticipationRecord, error) {
	var recordModel model.AnticipationRecordModel
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAnticipationNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// DeleteWithReversal atomically deletes the settlement entry, restores the
// consumed installments to the open set and removes the record.
func (r *anticipationRepository) DeleteWithReversal(ctx context.Context, record *entity.AnticipationRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var settlement model.LedgerEntryModel
		if err := tx.Where("id = ?", record.SettlementEntryID).First(&settlement).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			// Settlement already gone; still restore the installments.
		} else {
			if settlement.IsSettled != nil && *settlement.IsSettled {
				return domainerror.ErrAnticipationAlreadyPaid
			}
			if err := tx.Unscoped().Delete(&model.LedgerEntryModel{}, "id = ?", settlement.ID).Error; err != nil {
				return err
			}
		}

		result := tx.Model(&model.LedgerEntryModel{}).
			Where("id IN ? AND user_id = ?", record.ConsumedEntryIDs, record.UserID).
			Updates(map[string]interface{}{
				"is_anticipated": false,
				"updated_at":     time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}

		return tx.Where("id = ?", record.ID).Delete(&model.AnticipationRecordModel{}).Error
	})
}
