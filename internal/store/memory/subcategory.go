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

type subcategoryRec struct {
	sub models.Subcategory
	seq int64
}

// SubcategoryStore is the in-memory subcategory collection.
type SubcategoryStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]subcategoryRec
}

// NewSubcategoryStore creates an empty in-memory subcategory store.
func NewSubcategoryStore() *SubcategoryStore {
	return &SubcategoryStore{items: make(map[uuid.UUID]subcategoryRec)}
}

func (s *SubcategoryStore) Create(_ context.Context, sub *models.Subcategory) (*models.Subcategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	out := *sub
	out.ID = uuid.New()
	out.CreatedAt = now
	out.UpdatedAt = now
	s.items[out.ID] = subcategoryRec{sub: out, seq: nextSeq()}
	return &out, nil
}

func (s *SubcategoryStore) Update(_ context.Context, sub *models.Subcategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.items[sub.ID]
	if !ok {
		return fmt.Errorf("subcategory %s not found", sub.ID)
	}
	updated := *sub
	updated.CreatedAt = rec.sub.CreatedAt
	updated.UpdatedAt = time.Now()
	s.items[sub.ID] = subcategoryRec{sub: updated, seq: rec.seq}
	return nil
}

func (s *SubcategoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("subcategory %s not found", id)
	}
	delete(s.items, id)
	return nil
}

func (s *SubcategoryStore) FindByID(_ context.Context, id uuid.UUID) (*models.Subcategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	out := rec.sub
	return &out, nil
}

func (s *SubcategoryStore) FindBySlug(_ context.Context, slug string, parentID uuid.UUID) (*models.Subcategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.items {
		if rec.sub.Slug == slug && rec.sub.ParentID == parentID {
			out := rec.sub
			return &out, nil
		}
	}
	return nil, nil
}

func (s *SubcategoryStore) FindFirstBySlug(_ context.Context, slug string) (*models.Subcategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *subcategoryRec
	for _, rec := range s.items {
		rec := rec
		if rec.sub.Slug != slug {
			continue
		}
		if found == nil || rec.seq < found.seq {
			found = &rec
		}
	}
	if found == nil {
		return nil, nil
	}
	out := found.sub
	return &out, nil
}

func (s *SubcategoryStore) List(_ context.Context) ([]models.Subcategory, error) {
	return s.listWhere(func(models.Subcategory) bool { return true }), nil
}

func (s *SubcategoryStore) ListByParent(_ context.Context, parentID uuid.UUID) ([]models.Subcategory, error) {
	return s.listWhere(func(sub models.Subcategory) bool { return sub.ParentID == parentID }), nil
}

func (s *SubcategoryStore) ListByStructureSlug(_ context.Context, structureSlug string) ([]models.Subcategory, error) {
	return s.listWhere(func(sub models.Subcategory) bool { return sub.TableStructureSlug == structureSlug }), nil
}

func (s *SubcategoryStore) listWhere(match func(models.Subcategory) bool) []models.Subcategory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var recs []subcategoryRec
	for _, rec := range s.items {
		if match(rec.sub) {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	out := make([]models.Subcategory, len(recs))
	for i, rec := range recs {
		out[i] = rec.sub
	}
	return out
}

func (s *SubcategoryStore) DeleteByParent(_ context.Context, parentID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, rec := range s.items {
		if rec.sub.ParentID == parentID {
			delete(s.items, id)
			n++
		}
	}
	return n, nil
}

func (s *SubcategoryStore) CountByParent(_ context.Context, parentID uuid.UUID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, rec := range s.items {
		if rec.sub.ParentID == parentID {
			n++
		}
	}
	return n, nil
}

func (s *SubcategoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}
