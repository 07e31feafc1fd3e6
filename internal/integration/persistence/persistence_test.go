package persistence

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openmonetis/backend/internal/domain/entity"
	"github.com/openmonetis/backend/internal/integration/persistence/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.LedgerEntryModel{},
		&model.CardModel{},
		&model.AnticipationRecordModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestEntry(userID uuid.UUID) *entity.LedgerEntry {
	now := time.Now().UTC()
	settled := false
	return &entity.LedgerEntry{
		ID:            uuid.New(),
		UserID:        userID,
		Description:   "Electricity bill",
		Amount:        decimal.NewFromFloat(180.40),
		Type:          entity.TransactionTypeExpense,
		Condition:     entity.ConditionSingle,
		PurchaseDate:  time.Date(2026, time.May, 12, 0, 0, 0, 0, time.UTC),
		Period:        "2026-05",
		PaymentMethod: entity.PaymentMethodPix,
		IsSettled:     &settled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func newTestSeries(userID uuid.UUID, n int) []*entity.LedgerEntry {
	seriesID := uuid.New()
	now := time.Now().UTC()
	entries := make([]*entity.LedgerEntry, 0, n)
	for k := 1; k <= n; k++ {
		current, total := k, n
		entries = append(entries, &entity.LedgerEntry{
			ID:                 uuid.New(),
			UserID:             userID,
			Description:        "TV 6x",
			Amount:             decimal.NewFromFloat(250),
			Type:               entity.TransactionTypeExpense,
			Condition:          entity.ConditionInstallment,
			SeriesID:           &seriesID,
			InstallmentCurrent: &current,
			InstallmentTotal:   &total,
			PurchaseDate:       time.Date(2026, time.Month(k), 8, 0, 0, 0, 0, time.UTC),
			Period:             time.Date(2026, time.Month(k), 1, 0, 0, 0, 0, time.UTC).Format("2006-01"),
			PaymentMethod:      entity.PaymentMethodCreditCard,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
	}
	return entries
}
