// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a ledger entry.
type TransactionType string

const (
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeTransfer TransactionType = "internal-transfer"
)

// Condition represents how a purchase is split into ledger entries.
type Condition string

const (
	ConditionSingle      Condition = "single"
	ConditionInstallment Condition = "installment"
	ConditionRecurring   Condition = "recurring"
)

// PaymentMethod represents the instrument used to pay a ledger entry.
type PaymentMethod string

const (
	PaymentMethodCreditCard     PaymentMethod = "credit-card"
	PaymentMethodDebitCard      PaymentMethod = "debit-card"
	PaymentMethodCash           PaymentMethod = "cash"
	PaymentMethodPix            PaymentMethod = "pix"
	PaymentMethodBankTransfer   PaymentMethod = "bank-transfer"
	PaymentMethodPrepaidVoucher PaymentMethod = "prepaid-voucher"
	PaymentMethodBoleto         PaymentMethod = "boleto"
	PaymentMethodOther          PaymentMethod = "other"
)

// LedgerEntry represents one financial movement in the ledger.
//
// Entries generated from the same installment or recurring template share a
// SeriesID and carry a 1-based InstallmentCurrent out of InstallmentTotal.
// One-off entries have all three unset. Period is derived from the entry's
// own dates and payment instrument at creation time and is never edited
// directly.
type LedgerEntry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal // Positive magnitude; direction comes from Type
	Type        TransactionType
	Condition   Condition

	// Series fields. SeriesID is nil exactly when both installment fields are nil.
	SeriesID           *uuid.UUID
	InstallmentCurrent *int
	InstallmentTotal   *int

	// PurchaseDate is the effective date of this specific entry. For
	// installment k it is the origin purchase date advanced by k-1 months.
	// OriginalPurchaseDate is the real purchase date, identical across a
	// series; nil on legacy rows imported before it existed.
	PurchaseDate         time.Time
	OriginalPurchaseDate *time.Time

	// Period is the "YYYY-MM" billing period the entry is attributed to.
	Period string

	PaymentMethod PaymentMethod

	// IsSettled is nil only for credit-card entries, where settlement is
	// tracked at the invoice level rather than per entry.
	IsSettled *bool

	// Boleto-only fields.
	DueDate           *time.Time
	BoletoPaymentDate *time.Time

	// IsAnticipated marks an installment that was folded into an
	// anticipation settlement. The entry stays in history for audit.
	IsAnticipated bool

	CategoryID *uuid.UUID
	PayerID    *uuid.UUID
	AccountID  *uuid.UUID
	CardID     *uuid.UUID
	Notes      string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// IsSeriesMember reports whether the entry belongs to a generated series.
func (e *LedgerEntry) IsSeriesMember() bool {
	return e.SeriesID != nil
}

// EffectiveOriginalPurchaseDate returns OriginalPurchaseDate when populated
// and falls back to PurchaseDate for legacy rows that predate the field.
func (e *LedgerEntry) EffectiveOriginalPurchaseDate() time.Time {
	if e.OriginalPurchaseDate != nil {
		return *e.OriginalPurchaseDate
	}
	return e.PurchaseDate
}

// IsOpen reports whether the entry still counts towards open/pending views:
// not settled and not consumed by an anticipation.
func (e *LedgerEntry) IsOpen() bool {
	if e.IsAnticipated {
		return false
	}
	return e.IsSettled == nil || !*e.IsSettled
}
