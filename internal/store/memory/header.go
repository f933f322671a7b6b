// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"rajkhabar/internal/models"
	"rajkhabar/internal/store"
)

type headerRec struct {
	h   models.HeaderComponent
	seq int64
}

// HeaderComponentStore is the in-memory header component collection.
type HeaderComponentStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]headerRec
}

// NewHeaderComponentStore creates an empty in-memory header store.
func NewHeaderComponentStore() *HeaderComponentStore {
	return &HeaderComponentStore{items: make(map[uuid.UUID]headerRec)}
}

func (s *HeaderComponentStore) Create(_ context.Context, h *models.HeaderComponent) (*models.HeaderComponent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	out := *h
	out.ID = uuid.New()
	out.CreatedAt = now
	out.UpdatedAt = now
	s.items[out.ID] = headerRec{h: out, seq: nextSeq()}
	return &out, nil
}

func (s *HeaderComponentStore) Update(_ context.Context, h *models.HeaderComponent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.items[h.ID]
	if !ok {
		return fmt.Errorf("header component %s not found", h.ID)
	}
	updated := *h
	updated.CreatedAt = rec.h.CreatedAt
	updated.UpdatedAt = time.Now()
	s.items[h.ID] = headerRec{h: updated, seq: rec.seq}
	return nil
}

func (s *HeaderComponentStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("header component %s not found", id)
	}
	delete(s.items, id)
	return nil
}

func (s *HeaderComponentStore) FindByID(_ context.Context, id uuid.UUID) (*models.HeaderComponent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	out := rec.h
	return &out, nil
}

func (s *HeaderComponentStore) FindBySlug(_ context.Context, slug string, categoryID, subcategoryID uuid.UUID) (*models.HeaderComponent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.items {
		if rec.h.Slug == slug && rec.h.CategoryID == categoryID && rec.h.SubcategoryID == subcategoryID {
			out := rec.h
			return &out, nil
		}
	}
	return nil, nil
}

func (s *HeaderComponentStore) FindByBinding(_ context.Context, categoryID, subcategoryID uuid.UUID) (*models.HeaderComponent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.items {
		if rec.h.CategoryID == categoryID && rec.h.SubcategoryID == subcategoryID {
			out := rec.h
			return &out, nil
		}
	}
	return nil, nil
}

func matchHeader(h models.HeaderComponent, f store.HeaderFilter) bool {
	if f.CategorySlug != "" && h.CategorySlug != f.CategorySlug {
		return false
	}
	if f.SubcategorySlug != "" && h.SubcategorySlug != f.SubcategorySlug {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(h.Name), q) && !strings.Contains(strings.ToLower(h.Heading), q) {
			return false
		}
	}
	return true
}

func (s *HeaderComponentStore) List(_ context.Context, f store.HeaderFilter) ([]models.HeaderComponent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var recs []headerRec
	for _, rec := range s.items {
		if matchHeader(rec.h, f) {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq > recs[j].seq })

	if f.Offset > 0 {
		if f.Offset >= len(recs) {
			recs = nil
		} else {
			recs = recs[f.Offset:]
		}
	}
	if f.Limit > 0 && len(recs) > f.Limit {
		recs = recs[:f.Limit]
	}

	out := make([]models.HeaderComponent, len(recs))
	for i, rec := range recs {
		out[i] = rec.h
	}
	return out, nil
}

func (s *HeaderComponentStore) CountFiltered(_ context.Context, f store.HeaderFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, rec := range s.items {
		if matchHeader(rec.h, f) {
			n++
		}
	}
	return n, nil
}

func (s *HeaderComponentStore) CountByCategory(_ context.Context, categoryID uuid.UUID) (int, error) {
	return s.countWhere(func(h models.HeaderComponent) bool { return h.CategoryID == categoryID }), nil
}

func (s *HeaderComponentStore) CountBySubcategory(_ context.Context, subcategoryID uuid.UUID) (int, error) {
	return s.countWhere(func(h models.HeaderComponent) bool { return h.SubcategoryID == subcategoryID }), nil
}

func (s *HeaderComponentStore) countWhere(match func(models.HeaderComponent) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, rec := range s.items {
		if match(rec.h) {
			n++
		}
	}
	return n
}

func (s *HeaderComponentStore) DeleteByCategory(_ context.Context, categoryID uuid.UUID) (int64, error) {
	return s.deleteWhere(func(h models.HeaderComponent) bool { return h.CategoryID == categoryID }), nil
}

func (s *HeaderComponentStore) DeleteBySubcategory(_ context.Context, subcategoryID uuid.UUID) (int64, error) {
	return s.deleteWhere(func(h models.HeaderComponent) bool { return h.SubcategoryID == subcategoryID }), nil
}

func (s *HeaderComponentStore) deleteWhere(match func(models.HeaderComponent) bool) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, rec := range s.items {
		if match(rec.h) {
			delete(s.items, id)
			n++
		}
	}
	return n
}

func (s *HeaderComponentStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}
