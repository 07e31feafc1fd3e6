// Package series contains the series generation and bulk-scope use cases.
package series

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openmonetis/backend/internal/application/adapter"
	"github.com/openmonetis/backend/internal/application/usecase/period"
	"github.com/openmonetis/backend/internal/domain/entity"
	domainerror "github.com/openmonetis/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for entry descriptions.
	MaxDescriptionLength = 255
	// MaxNotesLength is the maximum allowed length for entry notes.
	MaxNotesLength = 1000
)

// GenerateSeriesInput represents the template a caller submits for one
// logical purchase or income. Amount is the per-occurrence amount: the
// generator repeats it, it never divides a total by the count.
type GenerateSeriesInput struct {
	UserID        uuid.UUID
	Description   string
	Amount        decimal.Decimal
	Type          entity.TransactionType
	Condition     entity.Condition
	Count         int // Number of entries to create; ignored for single
	PaymentMethod entity.PaymentMethod
	PurchaseDate  time.Time
	DueDate       *time.Time // Boleto only
	IsSettled     *bool      // Ignored for credit card, which is invoice-settled
	CategoryID    *uuid.UUID
	PayerID       *uuid.UUID
	AccountID     *uuid.UUID
	CardID        *uuid.UUID
	Notes         string
}

// GenerateSeriesOutput represents the generated entries in ordinal order.
type GenerateSeriesOutput struct {
	SeriesID *uuid.UUID
	Entries  []*entity.LedgerEntry
}

// GenerateSeriesUseCase expands one transaction template into its ledger
// entries and persists them as a single atomic batch.
type GenerateSeriesUseCase struct {
	entryRepo adapter.EntryRepository
	cardRepo  adapter.CardRepository
}

// NewGenerateSeriesUseCase creates a new GenerateSeriesUseCase instance.
func NewGenerateSeriesUseCase(
	entryRepo adapter.EntryRepository,
	cardRepo adapter.CardRepository,
) *GenerateSeriesUseCase {
	return &GenerateSeriesUseCase{
		entryRepo: entryRepo,
		cardRepo:  cardRepo,
	}
}

// Execute performs the series generation.
func (uc *GenerateSeriesUseCase) Execute(ctx context.Context, input GenerateSeriesInput) (*GenerateSeriesOutput, error) {
	if err := uc.validate(&input); err != nil {
		return nil, err
	}

	// Card lookup feeds the deriver for credit-card purchases. A missing
	// card reference falls back to the non-card rule instead of failing:
	// legacy imports carry card-less credit entries.
	var closingDay, dueDay *int
	if input.PaymentMethod == entity.PaymentMethodCreditCard && input.CardID != nil {
		card, err := uc.cardRepo.FindByID(ctx, *input.CardID, input.UserID)
		if err != nil {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeCardNotFound,
				"card not found",
				domainerror.ErrCardNotFound,
			)
		}
		closingDay = &card.ClosingDay
		dueDay = &card.DueDay
	}

	count := input.Count
	var seriesID *uuid.UUID
	if input.Condition == entity.ConditionSingle {
		count = 1
	} else {
		// A one-member series keeps its seriesId and ordinal so later
		// bulk-scope operations treat it uniformly.
		id := uuid.New()
		seriesID = &id
	}

	settled := uc.settlementDefault(input)
	originalDate := input.PurchaseDate

	now := time.Now().UTC()
	entries := make([]*entity.LedgerEntry, 0, count)
	for k := 1; k <= count; k++ {
		purchaseDate := period.AddMonths(originalDate, k-1)

		var dueDate *time.Time
		if input.DueDate != nil {
			d := period.AddMonths(*input.DueDate, k-1)
			dueDate = &d
		}

		entry := &entity.LedgerEntry{
			ID:                   uuid.New(),
			UserID:               input.UserID,
			Description:          input.Description,
			Amount:               input.Amount,
			Type:                 input.Type,
			Condition:            input.Condition,
			SeriesID:             seriesID,
			PurchaseDate:         purchaseDate,
			OriginalPurchaseDate: &originalDate,
			PaymentMethod:        input.PaymentMethod,
			IsSettled:            settled,
			DueDate:              dueDate,
			CategoryID:           input.CategoryID,
			PayerID:              input.PayerID,
			AccountID:            input.AccountID,
			CardID:               input.CardID,
			Notes:                input.Notes,
			CreatedAt:            now,
			UpdatedAt:            now,
		}

		if seriesID != nil {
			current, total := k, count
			entry.InstallmentCurrent = &current
			entry.InstallmentTotal = &total
		}

		// Each entry's period comes from its own dates, so later
		// installments can land in later billing cycles.
		entry.Period = period.Derive(period.DeriveInput{
			PurchaseDate:  purchaseDate,
			PaymentMethod: input.PaymentMethod,
			ClosingDay:    closingDay,
			DueDay:        dueDay,
			BoletoDueDate: dueDate,
		})

		entries = append(entries, entry)
	}

	if err := uc.entryRepo.CreateBatch(ctx, entries); err != nil {
		return nil, fmt.Errorf("failed to persist series: %w", err)
	}

	return &GenerateSeriesOutput{
		SeriesID: seriesID,
		Entries:  entries,
	}, nil
}

func (uc *GenerateSeriesUseCase) validate(input *GenerateSeriesInput) error {
	if len(input.Description) > MaxDescriptionLength {
		return domainerror.NewEntryError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if len(input.Notes) > MaxNotesLength {
		return domainerror.NewEntryError(
			domainerror.ErrCodeNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}

	if !isValidTransactionType(input.Type) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense', 'income' or 'internal-transfer'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !isValidCondition(input.Condition) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidCondition,
			"condition must be 'single', 'installment' or 'recurring'",
			domainerror.ErrInvalidCondition,
		)
	}

	if !isValidPaymentMethod(input.PaymentMethod) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"unknown payment method",
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	if input.Condition != entity.ConditionSingle && input.Count < 1 {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidInstallmentCount,
			"count must be at least 1",
			domainerror.ErrInvalidInstallmentCount,
		)
	}

	if input.Amount.IsNegative() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryAmount,
			"amount must not be negative; direction comes from the transaction type",
			domainerror.ErrInvalidEntryAmount,
		)
	}

	if input.PurchaseDate.IsZero() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryDate,
			"purchase date is required",
			domainerror.ErrInvalidEntryDate,
		)
	}

	return nil
}

// settlementDefault applies the tri-state settlement convention: nil for
// credit card (invoice-level settlement), caller value or false otherwise.
func (uc *GenerateSeriesUseCase) settlementDefault(input GenerateSeriesInput) *bool {
	if input.PaymentMethod == entity.PaymentMethodCreditCard {
		return nil
	}
	if input.IsSettled != nil {
		return input.IsSettled
	}
	settled := false
	return &settled
}

func isValidTransactionType(t entity.TransactionType) bool {
	switch t {
	case entity.TransactionTypeExpense, entity.TransactionTypeIncome, entity.TransactionTypeTransfer:
		return true
	}
	return false
}

func isValidCondition(c entity.Condition) bool {
	switch c {
	case entity.ConditionSingle, entity.ConditionInstallment, entity.ConditionRecurring:
		return true
	}
	return false
}

func isValidPaymentMethod(m entity.PaymentMethod) bool {
	switch m {
	case entity.PaymentMethodCreditCard,
		entity.PaymentMethodDebitCard,
		entity.PaymentMethodCash,
		entity.PaymentMethodPix,
		entity.PaymentMethodBankTransfer,
		entity.PaymentMethodPrepaidVoucher,
		entity.PaymentMethodBoleto,
		entity.PaymentMethodOther:
		return true
	}
	return false
}
