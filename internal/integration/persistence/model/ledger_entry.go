// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/openmonetis/backend/internal/domain/entity"
)

// LedgerEntryModel represents the ledger_entries table in the database.
type LedgerEntryModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type        string          `gorm:"type:varchar(20);not null;index"`
	Condition   string          `gorm:"type:varchar(15);not null"`

	// Series fields
	SeriesID           *uuid.UUID `gorm:"type:uuid;index"`
	InstallmentCurrent *int       `gorm:"type:integer"`
	InstallmentTotal   *int       `gorm:"type:integer"`

	PurchaseDate         time.Time  `gorm:"type:date;not null;index"`
	OriginalPurchaseDate *time.Time `gorm:"type:date"`
	Period               string     `gorm:"type:varchar(7);not null;index"`
	PaymentMethod        string     `gorm:"type:varchar(20);not null;index"`
	IsSettled            *bool      `gorm:"type:boolean"`

	// Boleto fields
	DueDate           *time.Time `gorm:"type:date"`
	BoletoPaymentDate *time.Time `gorm:"type:date"`

	IsAnticipated bool `gorm:"default:false;index"`

	CategoryID *uuid.UUID `gorm:"type:uuid;index"`
	PayerID    *uuid.UUID `gorm:"type:uuid;index"`
	AccountID  *uuid.UUID `gorm:"type:uuid;index"`
	CardID     *uuid.UUID `gorm:"type:uuid;index"`
	Notes      string     `gorm:"type:text"`

	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Card *CardModel `gorm:"foreignKey:CardID;references:ID"`
}

// TableName returns the table name for the LedgerEntryModel.
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToEntity converts a LedgerEntryModel to a domain LedgerEntry entity.
func (m *LedgerEntryModel) ToEntity() *entity.LedgerEntry {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.LedgerEntry{
		ID:                   m.ID,
		UserID:               m.UserID,
		Description:          m.Description,
		Amount:               m.Amount,
		Type:                 entity.TransactionType(m.Type),
		Condition:            entity.Condition(m.Condition),
		SeriesID:             m.SeriesID,
		InstallmentCurrent:   m.InstallmentCurrent,
		InstallmentTotal:     m.InstallmentTotal,
		PurchaseDate:         m.PurchaseDate,
		OriginalPurchaseDate: m.OriginalPurchaseDate,
		Period:               m.Period,
		PaymentMethod:        entity.PaymentMethod(m.PaymentMethod),
		IsSettled:            m.IsSettled,
		DueDate:              m.DueDate,
		BoletoPaymentDate:    m.BoletoPaymentDate,
		IsAnticipated:        m.IsAnticipated,
		CategoryID:           m.CategoryID,
		PayerID:              m.PayerID,
		AccountID:            m.AccountID,
		CardID:               m.CardID,
		Notes:                m.Notes,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
		DeletedAt:            deletedAt,
	}
}

// LedgerEntryFromEntity creates a LedgerEntryModel from a domain LedgerEntry entity.
func LedgerEntryFromEntity(entry *entity.LedgerEntry) *LedgerEntryModel {
	var deletedAt gorm.DeletedAt
	if entry.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *entry.DeletedAt, Valid: true}
	}

	return &LedgerEntryModel{
		ID:                   entry.ID,
		UserID:               entry.UserID,
		Description:          entry.Description,
		Amount:               entry.Amount,
		Type:                 string(entry.Type),
		Condition:            string(entry.Condition),
		SeriesID:             entry.SeriesID,
		InstallmentCurrent:   entry.InstallmentCurrent,
		InstallmentTotal:     entry.InstallmentTotal,
		PurchaseDate:         entry.PurchaseDate,
		OriginalPurchaseDate: entry.OriginalPurchaseDate,
		Period:               entry.Period,
		PaymentMethod:        string(entry.PaymentMethod),
		IsSettled:            entry.IsSettled,
		DueDate:              entry.DueDate,
		BoletoPaymentDate:    entry.BoletoPaymentDate,
		IsAnticipated:        entry.IsAnticipated,
		CategoryID:           entry.CategoryID,
		PayerID:              entry.PayerID,
		AccountID:            entry.AccountID,
		CardID:               entry.CardID,
		Notes:                entry.Notes,
		CreatedAt:            entry.CreatedAt,
		UpdatedAt:            entry.UpdatedAt,
		DeletedAt:            deletedAt,
	}
}
