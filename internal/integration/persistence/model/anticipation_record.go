package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/openmonetis/backend/internal/domain/entity"
)

// AnticipationRecordModel represents the installment_anticipations table in
// the database.
type AnticipationRecordModel struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID      `gorm:"type:uuid;not null;index"`
	SeriesID           uuid.UUID      `gorm:"type:uuid;not null;index"`
	AnticipationPeriod string         `gorm:"type:varchar(7);not null"`
	ConsumedEntryIDs   pq.StringArray `gorm:"type:uuid[]"`
	SettlementEntryID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	PayerID            *uuid.UUID     `gorm:"type:uuid"`
	CategoryID         *uuid.UUID     `gorm:"type:uuid"`
	Note               string         `gorm:"type:text"`
	CreatedAt          time.Time      `gorm:"not null"`
}

// TableName returns the table name for the AnticipationRecordModel.
func (AnticipationRecordModel) TableName() string {
	return "installment_anticipations"
}

// ToEntity converts an AnticipationRecordModel to a domain AnticipationRecord entity.
func (m *AnticipationRecordModel) ToEntity() *entity.AnticipationRecord {
	record := &entity.AnticipationRecord{
		ID:                 m.ID,
		UserID:             m.UserID,
		SeriesID:           m.SeriesID,
		AnticipationPeriod: m.AnticipationPeriod,
		SettlementEntryID:  m.SettlementEntryID,
		PayerID:            m.PayerID,
		CategoryID:         m.CategoryID,
		Note:               m.Note,
		CreatedAt:          m.CreatedAt,
	}

	record.ConsumedEntryIDs = make([]uuid.UUID, 0, len(m.ConsumedEntryIDs))
	for _, idStr := range m.ConsumedEntryIDs {
		if id, err := uuid.Parse(idStr); err == nil {
			record.ConsumedEntryIDs = append(record.ConsumedEntryIDs, id)
		}
	}

	return record
}

// AnticipationRecordFromEntity creates an AnticipationRecordModel from a domain entity.
func AnticipationRecordFromEntity(record *entity.AnticipationRecord) *AnticipationRecordModel {
	m := &AnticipationRecordModel{
		ID:                 record.ID,
		UserID:             record.UserID,
		SeriesID:           record.SeriesID,
		AnticipationPeriod: record.AnticipationPeriod,
		SettlementEntryID:  record.SettlementEntryID,
		PayerID:            record.PayerID,
		CategoryID:         record.CategoryID,
		Note:               record.Note,
		CreatedAt:          record.CreatedAt,
	}

	m.ConsumedEntryIDs = make(pq.StringArray, len(record.ConsumedEntryIDs))
	for i, id := range record.ConsumedEntryIDs {
		m.ConsumedEntryIDs[i] = id.String()
	}

	return m
}
