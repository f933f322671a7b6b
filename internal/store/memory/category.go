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

type categoryRec struct {
	cat models.Category
	seq int64
}

// CategoryStore is the in-memory category collection.
type CategoryStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]categoryRec
}

// NewCategoryStore creates an empty in-memory category store.
func NewCategoryStore() *CategoryStore {
	return &CategoryStore{items: make(map[uuid.UUID]categoryRec)}
}

func (s *CategoryStore) Create(_ context.Context, c *models.Category) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	out := *c
	out.ID = uuid.New()
	out.CreatedAt = now
	out.UpdatedAt = now
	s.items[out.ID] = categoryRec{cat: out, seq: nextSeq()}
	return &out, nil
}

func (s *CategoryStore) Update(_ context.Context, c *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.items[c.ID]
	if !ok {
		return fmt.Errorf("category %s not found", c.ID)
	}
	updated := *c
	updated.CreatedAt = rec.cat.CreatedAt
	updated.UpdatedAt = time.Now()
	s.items[c.ID] = categoryRec{cat: updated, seq: rec.seq}
	return nil
}

func (s *CategoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("category %s not found", id)
	}
	delete(s.items, id)
	return nil
}

func (s *CategoryStore) FindByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	out := rec.cat
	return &out, nil
}

func (s *CategoryStore) FindBySlug(_ context.Context, slug string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.items {
		if rec.cat.Slug == slug {
			out := rec.cat
			return &out, nil
		}
	}
	return nil, nil
}

func (s *CategoryStore) List(_ context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]categoryRec, 0, len(s.items))
	for _, rec := range s.items {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	out := make([]models.Category, len(recs))
	for i, rec := range recs {
		out[i] = rec.cat
	}
	return out, nil
}

func (s *CategoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}
