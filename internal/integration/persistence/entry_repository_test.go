package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openmonetis/backend/internal/application/adapter"
	"github.com/openmonetis/backend/internal/domain/entity"
	domainerror "github.com/openmonetis/backend/internal/domain/error"
)

func TestEntryRepository_CreateBatchAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	entries := newTestSeries(userID, 3)
	if err := repo.CreateBatch(ctx, entries); err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}

	found, err := repo.FindByID(ctx, entries[1].ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Description != "TV 6x" || *found.InstallmentCurrent != 2 {
		t.Errorf("entry round trip lost data: %+v", found)
	}
	if !found.Amount.Equal(decimal.NewFromFloat(250)) {
		t.Errorf("amount round trip lost precision: %s", found.Amount)
	}

	members, err := repo.FindBySeriesID(ctx, *entries[0].SeriesID, userID)
	if err != nil {
		t.Fatalf("FindBySeriesID failed: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(members))
	}
	for i, m := range members {
		if *m.InstallmentCurrent != i+1 {
			t.Errorf("members out of ordinal order at position %d", i)
		}
	}
}

func TestEntryRepository_CreateBatchRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	entries := newTestSeries(userID, 3)
	// Duplicate primary key makes the third insert fail mid-batch.
	entries[2].ID = entries[0].ID

	if err := repo.CreateBatch(ctx, entries); err == nil {
		t.Fatal("expected CreateBatch to fail on a duplicate ID")
	}

	result, err := repo.FindByFilter(ctx, adapter.EntryFilter{UserID: userID},
		adapter.EntryPagination{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("FindByFilter failed: %v", err)
	}
	if result.Total != 0 {
		t.Errorf("failed batch must persist no rows, got %d", result.Total)
	}
}

func TestEntryRepository_FindByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestEntryRepository_FindBySeriesIDScopedToUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	entries := newTestSeries(userID, 2)
	if err := repo.CreateBatch(ctx, entries); err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}

	members, err := repo.FindBySeriesID(ctx, *entries[0].SeriesID, uuid.New())
	if err != nil {
		t.Fatalf("FindBySeriesID failed: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("another user must not see the series, got %d members", len(members))
	}
}

func TestEntryRepository_UpdateMany(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	entries := newTestSeries(userID, 3)
	if err := repo.CreateBatch(ctx, entries); err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}

	newAmount := decimal.NewFromFloat(199.90)
	notes := "renegotiated"
	ids := []uuid.UUID{entries[0].ID, entries[2].ID}
	count, err := repo.UpdateMany(ctx, ids, userID, adapter.EntryPatch{
		Amount: &newAmount,
		Notes:  &notes,
	})
	if err != nil {
		t.Fatalf("UpdateMany failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 updated rows, got %d", count)
	}

	for _, id := range ids {
		e, err := repo.FindByID(ctx, id)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if !e.Amount.Equal(newAmount) || e.Notes != notes {
			t.Errorf("patch not applied to %s", id)
		}
	}

	untouched, _ := repo.FindByID(ctx, entries[1].ID)
	if untouched.Amount.Equal(newAmount) {
		t.Errorf("unlisted entry must not be patched")
	}
}

func TestEntryRepository_UpdateManyClearCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	entry := newTestEntry(userID)
	catID := uuid.New()
	entry.CategoryID = &catID
	if err := repo.CreateBatch(ctx, []*entity.LedgerEntry{entry}); err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}

	count, err := repo.UpdateMany(ctx, []uuid.UUID{entry.ID}, userID, adapter.EntryPatch{ClearCategory: true})
	if err != nil {
		t.Fatalf("UpdateMany failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 updated row, got %d", count)
	}

	found, _ := repo.FindByID(ctx, entry.ID)
	if found.CategoryID != nil {
		t.Errorf("category must be cleared")
	}
}

func TestEntryRepository_UpdateManyIgnoresForeignRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	entry := newTestEntry(owner)
	if err := repo.CreateBatch(ctx, []*entity.LedgerEntry{entry}); err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}

	desc := "hijacked"
	count, err := repo.UpdateMany(ctx, []uuid.UUID{entry.ID}, uuid.New(), adapter.EntryPatch{Description: &desc})
	if err != nil {
		t.Fatalf("UpdateMany failed: %v", err)
	}
	if count != 0 {
		t.Errorf("foreign rows must not be updated, got %d", count)
	}
}

func TestEntryRepository_DeleteMany(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	entries := newTestSeries(userID, 3)
	if err := repo.CreateBatch(ctx, entries); err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}

	count, err := repo.DeleteMany(ctx, []uuid.UUID{entries[0].ID, entries[1].ID}, userID)
	if err != nil {
		t.Fatalf("DeleteMany failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 deleted rows, got %d", count)
	}

	if _, err := repo.FindByID(ctx, entries[0].ID); !errors.Is(err, domainerror.ErrEntryNotFound) {
		t.Errorf("soft-deleted entry must not be found")
	}
	if _, err := repo.FindByID(ctx, entries[2].ID); err != nil {
		t.Errorf("surviving entry must still be found: %v", err)
	}

	members, _ := repo.FindBySeriesID(ctx, *entries[0].SeriesID, userID)
	if len(members) != 1 {
		t.Errorf("series enumeration must skip deleted members, got %d", len(members))
	}
}

func TestEntryRepository_FindByFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	series := newTestSeries(userID, 2)
	single := newTestEntry(userID)
	settled := true
	paid := newTestEntry(userID)
	paid.ID = uuid.New()
	paid.IsSettled = &settled
	all := append(series, single, paid)
	if err := repo.CreateBatch(ctx, all); err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}

	t.Run("by period", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.EntryFilter{UserID: userID, Period: "2026-05"},
			adapter.EntryPagination{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if result.Total != 2 {
			t.Errorf("expected 2 entries in 2026-05, got %d", result.Total)
		}
	})

	t.Run("only open", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.EntryFilter{UserID: userID, OnlyOpen: true},
			adapter.EntryPagination{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		// Credit card installments have null is_settled and stay open.
		if result.Total != 3 {
			t.Errorf("expected 3 open entries, got %d", result.Total)
		}
	})

	t.Run("by condition", func(t *testing.T) {
		cond := entity.ConditionInstallment
		result, err := repo.FindByFilter(ctx, adapter.EntryFilter{UserID: userID, Condition: &cond},
			adapter.EntryPagination{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if result.Total != 2 {
			t.Errorf("expected 2 installment entries, got %d", result.Total)
		}
	})

	t.Run("search", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.EntryFilter{UserID: userID, Search: "electricity"},
			adapter.EntryPagination{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if result.Total != 2 {
			t.Errorf("expected 2 matches, got %d", result.Total)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.EntryFilter{UserID: userID},
			adapter.EntryPagination{Page: 1, Limit: 2})
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if len(result.Entries) != 2 || result.TotalPages != 2 || result.Total != 4 {
			t.Errorf("pagination mismatch: %d entries, %d pages, %d total",
				len(result.Entries), result.TotalPages, result.Total)
		}
	})
}

func TestEntryRepository_ExistsAllByIDsAndUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEntryRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	entries := newTestSeries(userID, 2)
	if err := repo.CreateBatch(ctx, entries); err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}

	ok, err := repo.ExistsAllByIDsAndUser(ctx, []uuid.UUID{entries[0].ID, entries[1].ID}, userID)
	if err != nil || !ok {
		t.Errorf("expected all entries to exist, ok=%v err=%v", ok, err)
	}

	ok, err = repo.ExistsAllByIDsAndUser(ctx, []uuid.UUID{entries[0].ID, uuid.New()}, userID)
	if err != nil || ok {
		t.Errorf("expected missing entry to fail the check, ok=%v err=%v", ok, err)
	}
}
