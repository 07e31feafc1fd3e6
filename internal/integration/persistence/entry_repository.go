// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openmonetis/backend/internal/application/adapter"
	"github.com/openmonetis/backend/internal/domain/entity"
	domainerror "github.com/openmonetis/backend/internal/domain/error"
	"github.com/openmonetis/backend/internal/integration/persistence/model"
)

// entryRepository implements the adapter.EntryRepository interface.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new ledger entry repository instance.
func NewEntryRepository(db *gorm.DB) adapter.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// CreateBatch persists all entries in a single transaction.
func (r *entryRepository) CreateBatch(ctx context.Context, entries []*entity.LedgerEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			entryModel := model.LedgerEntryFromEntity(entry)
			if err := tx.Create(entryModel).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves a ledger entry by its ID.
func (r *entryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error) {
	var entryModel model.LedgerEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindBySeriesID retrieves all entries sharing a series ID for a user,
// ordered by ascending installment ordinal.
func (r *entryRepository) FindBySeriesID(ctx context.Context, seriesID uuid.UUID, userID uuid.UUID) ([]*entity.LedgerEntry, error) {
	var entryModels []model.LedgerEntryModel
	result := r.db.WithContext(ctx).
		Where("series_id = ? AND user_id = ?", seriesID, userID).
		Order("installment_current ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.LedgerEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// FindByFilter retrieves entries based on filter criteria with pagination.
func (r *entryRepository) FindByFilter(ctx context.Context, filter adapter.EntryFilter, pagination adapter.EntryPagination) (*adapter.EntryListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.LedgerEntryModel{})

	query = query.Where("user_id = ?", filter.UserID)

	if filter.Period != "" {
		query = query.Where("period = ?", filter.Period)
	}
	if filter.SeriesID != nil {
		query = query.Where("series_id = ?", *filter.SeriesID)
	}
	if filter.PaymentMethod != nil {
		query = query.Where("payment_method = ?", string(*filter.PaymentMethod))
	}
	if filter.Condition != nil {
		query = query.Where("condition = ?", string(*filter.Condition))
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.OnlyOpen {
		query = query.Where("is_anticipated = ?", false).
			Where("(is_settled IS NULL OR is_settled = ?)", false)
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(description) LIKE ?", searchPattern)
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var entryModels []model.LedgerEntryModel
	result := query.
		Order("purchase_date DESC, created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.LedgerEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}

	return &adapter.EntryListResult{
		Entries:    entries,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update updates an existing entry in the database.
func (r *entryRepository) Update(ctx context.Context, entry *entity.LedgerEntry) error {
	entryModel := model.LedgerEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Save(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateMany applies the same patch to every listed entry in one transaction.
func (r *entryRepository) UpdateMany(ctx context.Context, ids []uuid.UUID, userID uuid.UUID, patch adapter.EntryPatch) (int64, error) {
	updates := patchToUpdates(patch)
	if len(updates) == 0 {
		return 0, nil
	}
	updates["updated_at"] = time.Now().UTC()

	var updatedCount int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.LedgerEntryModel{}).
			Where("id IN ? AND user_id = ?", ids, userID).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		updatedCount = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updatedCount, nil
}

// DeleteMany soft-deletes the listed entries in one transaction.
func (r *entryRepository) DeleteMany(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) (int64, error) {
	var deletedCount int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id IN ? AND user_id = ?", ids, userID).Delete(&model.LedgerEntryModel{})
		if result.Error != nil {
			return result.Error
		}
		deletedCount = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deletedCount, nil
}

// ExistsAllByIDsAndUser checks if all entries exist for the given IDs and user.
func (r *entryRepository) ExistsAllByIDsAndUser(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Where("id IN ? AND user_id = ?", ids, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count == int64(len(ids)), nil
}

// patchToUpdates maps the set fields of a patch to a gorm updates map.
func patchToUpdates(patch adapter.EntryPatch) map[string]interface{} {
	updates := map[string]interface{}{}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Amount != nil {
		updates["amount"] = *patch.Amount
	}
	if patch.CategoryID != nil {
		updates["category_id"] = *patch.CategoryID
	}
	if patch.ClearCategory {
		updates["category_id"] = nil
	}
	if patch.PayerID != nil {
		updates["payer_id"] = *patch.PayerID
	}
	if patch.AccountID != nil {
		updates["account_id"] = *patch.AccountID
	}
	if patch.CardID != nil {
		updates["card_id"] = *patch.CardID
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}
	if patch.DueDate != nil {
		updates["due_date"] = *patch.DueDate
	}
	return updates
}
