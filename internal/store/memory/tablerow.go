// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"rajkhabar/internal/models"
)

type rowRec struct {
	row models.TableRow
	seq int64
}

// TableRowStore is the in-memory table row collection.
type TableRowStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]rowRec
}

// NewTableRowStore creates an empty in-memory table row store.
func NewTableRowStore() *TableRowStore {
	return &TableRowStore{items: make(map[uuid.UUID]rowRec)}
}

func (s *TableRowStore) Create(_ context.Context, r *models.TableRow) (*models.TableRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	out := *r
	out.ID = uuid.New()
	out.CreatedAt = now
	out.UpdatedAt = now
	s.items[out.ID] = rowRec{row: out, seq: nextSeq()}
	return &out, nil
}

func (s *TableRowStore) Update(_ context.Context, r *models.TableRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.items[r.ID]
	if !ok {
		return fmt.Errorf("table row %s not found", r.ID)
	}
	updated := *r
	updated.CreatedAt = rec.row.CreatedAt
	updated.UpdatedAt = time.Now()
	s.items[r.ID] = rowRec{row: updated, seq: rec.seq}
	return nil
}

func (s *TableRowStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("table row %s not found", id)
	}
	delete(s.items, id)
	return nil
}

func (s *TableRowStore) FindByID(_ context.Context, id uuid.UUID) (*models.TableRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	out := rec.row
	return &out, nil
}

func (s *TableRowStore) FindBySlug(_ context.Context, slug string, categoryID, subcategoryID uuid.UUID) (*models.TableRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.items {
		if rec.row.Slug == slug && rec.row.CategoryID == categoryID && rec.row.SubcategoryID == subcategoryID {
			out := rec.row
			return &out, nil
		}
	}
	return nil, nil
}

func (s *TableRowStore) FindFirstBySlug(_ context.Context, slug string) (*models.TableRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *rowRec
	for _, rec := range s.items {
		rec := rec
		if rec.row.Slug != slug {
			continue
		}
		if found == nil || rec.seq < found.seq {
			found = &rec
		}
	}
	if found == nil {
		return nil, nil
	}
	out := found.row
	return &out, nil
}

func (s *TableRowStore) ListByBinding(_ context.Context, categoryID, subcategoryID uuid.UUID) ([]models.TableRow, error) {
	return s.listWhere(func(r models.TableRow) bool {
		return r.CategoryID == categoryID && r.SubcategoryID == subcategoryID
	}, 0), nil
}

func (s *TableRowStore) ListByStructureSlug(_ context.Context, structureSlug string) ([]models.TableRow, error) {
	return s.listWhere(func(r models.TableRow) bool { return r.TableStructureSlug == structureSlug }, 0), nil
}

func (s *TableRowStore) ListRecent(_ context.Context, subcategoryIDs []uuid.UUID, limit int) ([]models.TableRow, error) {
	want := make(map[uuid.UUID]bool, len(subcategoryIDs))
	for _, id := range subcategoryIDs {
		want[id] = true
	}
	return s.listWhere(func(r models.TableRow) bool { return want[r.SubcategoryID] }, limit), nil
}

// listWhere returns matching rows newest first, optionally limited.
func (s *TableRowStore) listWhere(match func(models.TableRow) bool, limit int) []models.TableRow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var recs []rowRec
	for _, rec := range s.items {
		if match(rec.row) {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq > recs[j].seq })
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}

	out := make([]models.TableRow, len(recs))
	for i, rec := range recs {
		out[i] = rec.row
	}
	return out
}

func (s *TableRowStore) CountByCategory(_ context.Context, categoryID uuid.UUID) (int, error) {
	return s.countWhere(func(r models.TableRow) bool { return r.CategoryID == categoryID }), nil
}

func (s *TableRowStore) CountBySubcategory(_ context.Context, subcategoryID uuid.UUID) (int, error) {
	return s.countWhere(func(r models.TableRow) bool { return r.SubcategoryID == subcategoryID }), nil
}

func (s *TableRowStore) countWhere(match func(models.TableRow) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, rec := range s.items {
		if match(rec.row) {
			n++
		}
	}
	return n
}

func (s *TableRowStore) DeleteByCategory(_ context.Context, categoryID uuid.UUID) (int64, error) {
	return s.deleteWhere(func(r models.TableRow) bool { return r.CategoryID == categoryID }), nil
}

func (s *TableRowStore) DeleteBySubcategory(_ context.Context, subcategoryID uuid.UUID) (int64, error) {
	return s.deleteWhere(func(r models.TableRow) bool { return r.SubcategoryID == subcategoryID }), nil
}

func (s *TableRowStore) deleteWhere(match func(models.TableRow) bool) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, rec := range s.items {
		if match(rec.row) {
			delete(s.items, id)
			n++
		}
	}
	return n
}

func (s *TableRowStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}
