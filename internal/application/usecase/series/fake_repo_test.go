package series

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/openmonetis/backend/internal/application/adapter"
	"github.com/openmonetis/backend/internal/domain/entity"
	domainerror "github.com/openmonetis/backend/internal/domain/error"
)

// fakeEntryRepo is an in-memory EntryRepository for use case tests.
type fakeEntryRepo struct {
	entries map[uuid.UUID]*entity.LedgerEntry

	createBatchErr error
	updateManyErr  error
	deleteManyErr  error

	lastUpdatedIDs []uuid.UUID
	lastDeletedIDs []uuid.UUID
	lastPatch      adapter.EntryPatch
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[uuid.UUID]*entity.LedgerEntry)}
}

func (r *fakeEntryRepo) add(entries ...*entity.LedgerEntry) {
	for _, e := range entries {
		r.entries[e.ID] = e
	}
}

func (r *fakeEntryRepo) CreateBatch(_ context.Context, entries []*entity.LedgerEntry) error {
	if r.createBatchErr != nil {
		return r.createBatchErr
	}
	r.add(entries...)
	return nil
}

func (r *fakeEntryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.LedgerEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, domainerror.ErrEntryNotFound
	}
	return e, nil
}

func (r *fakeEntryRepo) FindBySeriesID(_ context.Context, seriesID uuid.UUID, userID uuid.UUID) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range r.entries {
		if e.SeriesID != nil && *e.SeriesID == seriesID && e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].InstallmentCurrent, out[j].InstallmentCurrent
		if a == nil || b == nil {
			return a != nil
		}
		return *a < *b
	})
	return out, nil
}

func (r *fakeEntryRepo) FindByFilter(_ context.Context, _ adapter.EntryFilter, _ adapter.EntryPagination) (*adapter.EntryListResult, error) {
	return nil, errors.New("not implemented in fake")
}

func (r *fakeEntryRepo) Update(_ context.Context, entry *entity.LedgerEntry) error {
	if _, ok := r.entries[entry.ID]; !ok {
		return domainerror.ErrEntryNotFound
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeEntryRepo) UpdateMany(_ context.Context, ids []uuid.UUID, userID uuid.UUID, patch adapter.EntryPatch) (int64, error) {
	if r.updateManyErr != nil {
		return 0, r.updateManyErr
	}
	r.lastUpdatedIDs = ids
	r.lastPatch = patch
	var n int64
	for _, id := range ids {
		e, ok := r.entries[id]
		if !ok || e.UserID != userID {
			continue
		}
		if patch.Description != nil {
			e.Description = *patch.Description
		}
		if patch.Amount != nil {
			e.Amount = *patch.Amount
		}
		if patch.CategoryID != nil {
			e.CategoryID = patch.CategoryID
		}
		if patch.ClearCategory {
			e.CategoryID = nil
		}
		if patch.Notes != nil {
			e.Notes = *patch.Notes
		}
		n++
	}
	return n, nil
}

func (r *fakeEntryRepo) DeleteMany(_ context.Context, ids []uuid.UUID, userID uuid.UUID) (int64, error) {
	if r.deleteManyErr != nil {
		return 0, r.deleteManyErr
	}
	r.lastDeletedIDs = ids
	var n int64
	for _, id := range ids {
		e, ok := r.entries[id]
		if !ok || e.UserID != userID {
			continue
		}
		delete(r.entries, id)
		n++
	}
	return n, nil
}

func (r *fakeEntryRepo) ExistsAllByIDsAndUser(_ context.Context, ids []uuid.UUID, userID uuid.UUID) (bool, error) {
	for _, id := range ids {
		e, ok := r.entries[id]
		if !ok || e.UserID != userID {
			return false, nil
		}
	}
	return true, nil
}

// fakeCardRepo is an in-memory CardRepository.
type fakeCardRepo struct {
	cards map[uuid.UUID]*entity.Card
}

func newFakeCardRepo(cards ...*entity.Card) *fakeCardRepo {
	r := &fakeCardRepo{cards: make(map[uuid.UUID]*entity.Card)}
	for _, c := range cards {
		r.cards[c.ID] = c
	}
	return r
}

func (r *fakeCardRepo) FindByID(_ context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Card, error) {
	c, ok := r.cards[id]
	if !ok || c.UserID != userID {
		return nil, domainerror.ErrCardNotFound
	}
	return c, nil
}
