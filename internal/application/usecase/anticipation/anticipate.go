package anticipation

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openmonetis/backend/internal/application/adapter"
	"github.com/openmonetis/backend/internal/application/usecase/period"
	"github.com/openmonetis/backend/internal/domain/entity"
	domainerror "github.com/openmonetis/backend/internal/domain/error"
)

// AnticipateOverrides carries optional caller adjustments to the generated
// settlement entry. A nil Amount keeps the sum of the folded installments;
// a bank usually charges less than the face value, so callers pass the
// negotiated figure here.
type AnticipateOverrides struct {
	Amount     *decimal.Decimal
	PayerID    *uuid.UUID
	CategoryID *uuid.UUID
	Note       *string
}

// AnticipateInput represents the input for anticipating installments.
type AnticipateInput struct {
	UserID             uuid.UUID
	SeriesID           uuid.UUID
	InstallmentIDs     []uuid.UUID
	AnticipationPeriod string // "YYYY-MM"
	Overrides          AnticipateOverrides
}

// AnticipateOutput represents the result of an anticipation.
type AnticipateOutput struct {
	Record     *entity.AnticipationRecord
	Settlement *entity.LedgerEntry
	Consumed   []*entity.LedgerEntry
}

// AnticipateUseCase folds a set of open installments from one series into a
// single settlement entry attributed to the chosen period. The folded
// installments stay in the ledger flagged as anticipated; the settlement
// entry is a standalone entry outside the series.
type AnticipateUseCase struct {
	entryRepo        adapter.EntryRepository
	anticipationRepo adapter.AnticipationRepository
}

// NewAnticipateUseCase creates a new AnticipateUseCase instance.
func NewAnticipateUseCase(
	entryRepo adapter.EntryRepository,
	anticipationRepo adapter.AnticipationRepository,
) *AnticipateUseCase {
	return &AnticipateUseCase{
		entryRepo:        entryRepo,
		anticipationRepo: anticipationRepo,
	}
}

// Execute performs the anticipation.
func (uc *AnticipateUseCase) Execute(ctx context.Context, input AnticipateInput) (*AnticipateOutput, error) {
	if len(input.InstallmentIDs) == 0 {
		return nil, domainerror.NewAnticipationError(
			domainerror.ErrCodeEmptyInstallmentIDs,
			"at least one installment must be selected",
			domainerror.ErrEmptyInstallmentIDs,
		)
	}

	if !period.IsValid(input.AnticipationPeriod) {
		return nil, domainerror.NewAnticipationError(
			domainerror.ErrCodeInvalidAnticipationPeriod,
			"anticipation period must be in YYYY-MM format",
			domainerror.ErrInvalidPeriod,
		)
	}

	members, err := uc.entryRepo.FindBySeriesID(ctx, input.SeriesID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load series members: %w", err)
	}
	if len(members) == 0 {
		return nil, domainerror.NewSeriesError(
			domainerror.ErrCodeSeriesNotFound,
			"series not found",
			domainerror.ErrSeriesNotFound,
		)
	}

	byID := make(map[uuid.UUID]*entity.LedgerEntry, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	consumed := make([]*entity.LedgerEntry, 0, len(input.InstallmentIDs))
	for _, id := range input.InstallmentIDs {
		installment, ok := byID[id]
		if !ok {
			return nil, domainerror.NewAnticipationError(
				domainerror.ErrCodeInstallmentNotInSeries,
				fmt.Sprintf("installment %s does not belong to series %s", id, input.SeriesID),
				domainerror.ErrInstallmentNotInSeries,
			)
		}
		if err := validateInstallment(installment); err != nil {
			return nil, err
		}
		consumed = append(consumed, installment)
	}

	sort.Slice(consumed, func(i, j int) bool {
		a, b := consumed[i].InstallmentCurrent, consumed[j].InstallmentCurrent
		return *a < *b
	})

	settlement, err := uc.buildSettlement(consumed, input)
	if err != nil {
		return nil, err
	}

	consumedIDs := make([]uuid.UUID, len(consumed))
	for i, c := range consumed {
		consumedIDs[i] = c.ID
	}

	record := entity.NewAnticipationRecord(
		input.UserID,
		input.SeriesID,
		input.AnticipationPeriod,
		consumedIDs,
		settlement.ID,
		input.Overrides.PayerID,
		input.Overrides.CategoryID,
		settlement.Notes,
	)

	if err := uc.anticipationRepo.CreateWithSettlement(ctx, record, settlement); err != nil {
		return nil, err
	}

	for _, c := range consumed {
		c.IsAnticipated = true
	}

	return &AnticipateOutput{
		Record:     record,
		Settlement: settlement,
		Consumed:   consumed,
	}, nil
}

// buildSettlement derives the settlement entry from the first consumed
// installment and the caller overrides. The settlement is dated on the first
// day of the anticipation period so month views pick it up naturally.
func (uc *AnticipateUseCase) buildSettlement(consumed []*entity.LedgerEntry, input AnticipateInput) (*entity.LedgerEntry, error) {
	first := consumed[0]

	amount := decimal.Zero
	for _, c := range consumed {
		amount = amount.Add(c.Amount)
	}
	if input.Overrides.Amount != nil {
		amount = *input.Overrides.Amount
	}

	settlementDate, err := period.Start(input.AnticipationPeriod)
	if err != nil {
		return nil, err
	}

	ordinals := make([]int, len(consumed))
	for i, c := range consumed {
		ordinals[i] = *c.InstallmentCurrent
	}
	total := len(consumed)
	if first.InstallmentTotal != nil {
		total = *first.InstallmentTotal
	}

	note := GenerateNote(ordinals, total)
	if input.Overrides.Note != nil {
		note = *input.Overrides.Note
	}

	categoryID := first.CategoryID
	if input.Overrides.CategoryID != nil {
		categoryID = input.Overrides.CategoryID
	}
	payerID := first.PayerID
	if input.Overrides.PayerID != nil {
		payerID = input.Overrides.PayerID
	}

	var settled *bool
	if first.PaymentMethod != entity.PaymentMethodCreditCard {
		s := false
		settled = &s
	}

	now := time.Now().UTC()
	return &entity.LedgerEntry{
		ID:            uuid.New(),
		UserID:        input.UserID,
		Description:   GenerateDescription(len(consumed), first.Description),
		Amount:        amount,
		Type:          first.Type,
		Condition:     entity.ConditionSingle,
		PurchaseDate:  settlementDate,
		Period:        input.AnticipationPeriod,
		PaymentMethod: first.PaymentMethod,
		IsSettled:     settled,
		CategoryID:    categoryID,
		PayerID:       payerID,
		AccountID:     first.AccountID,
		CardID:        first.CardID,
		Notes:         note,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func validateInstallment(e *entity.LedgerEntry) error {
	if e.Condition != entity.ConditionInstallment || e.InstallmentCurrent == nil {
		return domainerror.NewAnticipationError(
			domainerror.ErrCodeNotAnInstallment,
			fmt.Sprintf("entry %s is not an installment", e.ID),
			domainerror.ErrNotAnInstallment,
		)
	}
	if e.IsAnticipated {
		return domainerror.NewAnticipationError(
			domainerror.ErrCodeInstallmentAlreadyAnticipated,
			fmt.Sprintf("installment %s was already anticipated", e.ID),
			domainerror.ErrInstallmentAlreadyAnticipated,
		)
	}
	if e.IsSettled != nil && *e.IsSettled {
		return domainerror.NewAnticipationError(
			domainerror.ErrCodeInstallmentAlreadySettled,
			fmt.Sprintf("installment %s was already settled", e.ID),
			domainerror.ErrInstallmentAlreadySettled,
		)
	}
	return nil
}
