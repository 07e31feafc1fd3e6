package entry

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

// fakeEntryRepo is a minimal in-memory EntryRepository for the read and
// single-entry use cases.
type fakeEntryRepo struct {
	entries        map[uuid.UUID]*entity.LedgerEntry
	lastPagination adapter.EntryPagination
	lastPatch      adapter.EntryPatch
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[uuid.UUID]*entity.LedgerEntry)}
}

func (f *fakeEntryRepo) CreateBatch(_ context.Context, entries []*entity.LedgerEntry) error {
	for _, e := range entries {
		f.entries[e.ID] = e
	}
	return nil
}

func (f *fakeEntryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.LedgerEntry, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, domainerror.ErrEntryNotFound
	}
	return e, nil
}

func (f *fakeEntryRepo) FindBySeriesID(_ context.Context, seriesID uuid.UUID, userID uuid.UUID) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range f.entries {
		if e.SeriesID != nil && *e.SeriesID == seriesID && e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) FindByFilter(_ context.Context, filter adapter.EntryFilter, pagination adapter.EntryPagination) (*adapter.EntryListResult, error) {
	f.lastPagination = pagination

	var out []*entity.LedgerEntry
	for _, e := range f.entries {
		if e.UserID == filter.UserID {
			out = append(out, e)
		}
	}
	return &adapter.EntryListResult{
		Entries:    out,
		Total:      int64(len(out)),
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: 1,
	}, nil
}

func (f *fakeEntryRepo) Update(_ context.Context, e *entity.LedgerEntry) error {
	f.entries[e.ID] = e
	return nil
}

func (f *fakeEntryRepo) UpdateMany(_ context.Context, ids []uuid.UUID, userID uuid.UUID, patch adapter.EntryPatch) (int64, error) {
	f.lastPatch = patch

	var count int64
	for _, id := range ids {
		e, ok := f.entries[id]
		if !ok || e.UserID != userID {
			continue
		}
		if patch.Description != nil {
			e.Description = *patch.Description
		}
		if patch.Amount != nil {
			e.Amount = *patch.Amount
		}
		if patch.Notes != nil {
			e.Notes = *patch.Notes
		}
		count++
	}
	return count, nil
}

func (f *fakeEntryRepo) DeleteMany(_ context.Context, ids []uuid.UUID, userID uuid.UUID) (int64, error) {
	var count int64
	for _, id := range ids {
		e, ok := f.entries[id]
		if !ok || e.UserID != userID {
			continue
		}
		delete(f.entries, id)
		count++
	}
	return count, nil
}

func (f *fakeEntryRepo) ExistsAllByIDsAndUser(_ context.Context, ids []uuid.UUID, userID uuid.UUID) (bool, error) {
	for _, id := range ids {
		e, ok := f.entries[id]
		if !ok || e.UserID != userID {
			return false, nil
		}
	}
	return true, nil
}

func seedEntry(repo *fakeEntryRepo, userID uuid.UUID) *entity.LedgerEntry {
	e := &entity.LedgerEntry{
		ID:            uuid.New(),
		UserID:        userID,
		Description:   "Groceries",
		Amount:        decimal.NewFromInt(100),
		Type:          entity.TransactionTypeExpense,
		Condition:     entity.ConditionSingle,
		Period:        "2026-03",
		PaymentMethod: entity.PaymentMethodPix,
	}
	repo.entries[e.ID] = e
	return e
}

func TestListEntries_ClampsPagination(t *testing.T) {
	repo := newFakeEntryRepo()
	uc := NewListEntriesUseCase(repo)
	userID := uuid.New()

	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", page: 0, limit: 0, wantPage: 1, wantLimit: 50},
		{name: "negative page", page: -3, limit: 10, wantPage: 1, wantLimit: 10},
		{name: "limit capped", page: 2, limit: 500, wantPage: 2, wantLimit: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), ListEntriesInput{
				UserID: userID,
				Page:   tt.page,
				Limit:  tt.limit,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.lastPagination.Page != tt.wantPage {
				t.Errorf("page = %d, want %d", repo.lastPagination.Page, tt.wantPage)
			}
			if repo.lastPagination.Limit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", repo.lastPagination.Limit, tt.wantLimit)
			}
		})
	}
}

func TestGetEntry(t *testing.T) {
	repo := newFakeEntryRepo()
	uc := NewGetEntryUseCase(repo)
	userID := uuid.New()
	e := seedEntry(repo, userID)

	t.Run("returns owned entry", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetEntryInput{UserID: userID, EntryID: e.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Entry.ID != e.ID {
			t.Errorf("entry ID = %s, want %s", out.Entry.ID, e.ID)
		}
	})

	t.Run("unknown ID reports not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetEntryInput{UserID: userID, EntryID: uuid.New()})
		assertEntryErrorCode(t, err, domainerror.ErrCodeEntryNotFound)
	})

	t.Run("foreign entry reports not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetEntryInput{UserID: uuid.New(), EntryID: e.ID})
		assertEntryErrorCode(t, err, domainerror.ErrCodeEntryNotFound)
	})
}

func TestUpdateEntry(t *testing.T) {
	t.Run("applies the patch", func(t *testing.T) {
		repo := newFakeEntryRepo()
		uc := NewUpdateEntryUseCase(repo)
		userID := uuid.New()
		e := seedEntry(repo, userID)

		desc := "Supermarket"
		out, err := uc.Execute(context.Background(), UpdateEntryInput{
			UserID:  userID,
			EntryID: e.ID,
			Patch:   adapter.EntryPatch{Description: &desc},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Entry.Description != "Supermarket" {
			t.Errorf("description = %q, want %q", out.Entry.Description, "Supermarket")
		}
	})

	t.Run("rejects an empty patch", func(t *testing.T) {
		repo := newFakeEntryRepo()
		uc := NewUpdateEntryUseCase(repo)
		userID := uuid.New()
		e := seedEntry(repo, userID)

		_, err := uc.Execute(context.Background(), UpdateEntryInput{
			UserID:  userID,
			EntryID: e.ID,
			Patch:   adapter.EntryPatch{},
		})
		assertEntryErrorCode(t, err, domainerror.ErrCodeMissingEntryFields)
	})

	t.Run("foreign entry reports not found", func(t *testing.T) {
		repo := newFakeEntryRepo()
		uc := NewUpdateEntryUseCase(repo)
		e := seedEntry(repo, uuid.New())

		desc := "Supermarket"
		_, err := uc.Execute(context.Background(), UpdateEntryInput{
			UserID:  uuid.New(),
			EntryID: e.ID,
			Patch:   adapter.EntryPatch{Description: &desc},
		})
		assertEntryErrorCode(t, err, domainerror.ErrCodeEntryNotFound)
	})
}

func TestDeleteEntry(t *testing.T) {
	t.Run("deletes the entry", func(t *testing.T) {
		repo := newFakeEntryRepo()
		uc := NewDeleteEntryUseCase(repo)
		userID := uuid.New()
		e := seedEntry(repo, userID)

		if err := uc.Execute(context.Background(), DeleteEntryInput{UserID: userID, EntryID: e.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.entries[e.ID]; ok {
			t.Error("entry still present after delete")
		}
	})

	t.Run("unknown ID reports not found", func(t *testing.T) {
		repo := newFakeEntryRepo()
		uc := NewDeleteEntryUseCase(repo)

		err := uc.Execute(context.Background(), DeleteEntryInput{UserID: uuid.New(), EntryID: uuid.New()})
		assertEntryErrorCode(t, err, domainerror.ErrCodeEntryNotFound)
	})
}

func assertEntryErrorCode(t *testing.T, err error, code domainerror.EntryErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var entryErr *domainerror.EntryError
	if !errors.As(err, &entryErr) {
		t.Fatalf("expected EntryError, got %T: %v", err, err)
	}
	if entryErr.Code != code {
		t.Errorf("error code = %s, want %s", entryErr.Code, code)
	}
}
