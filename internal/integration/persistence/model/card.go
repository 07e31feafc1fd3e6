package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/openmonetis/backend/internal/domain/entity"
)

// CardModel represents the cards table in the database.
type CardModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	ClosingDay int       `gorm:"type:integer;not null"`
	DueDay     int       `gorm:"type:integer;not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the CardModel.
func (CardModel) TableName() string {
	return "cards"
}

// ToEntity converts a CardModel to a domain Card entity.
func (m *CardModel) ToEntity() *entity.Card {
	return &entity.Card{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		ClosingDay: m.ClosingDay,
		DueDay:     m.DueDay,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// CardFromEntity creates a CardModel from a domain Card entity.
func CardFromEntity(card *entity.Card) *CardModel {
	return &CardModel{
		ID:         card.ID,
		UserID:     card.UserID,
		Name:       card.Name,
		ClosingDay: card.ClosingDay,
		DueDay:     card.DueDay,
		CreatedAt:  card.CreatedAt,
		UpdatedAt:  card.UpdatedAt,
	}
}
