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

type cardRec struct {
	card models.Card
	seq  int64
}

// CardStore is the in-memory card collection.
type CardStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]cardRec
}

// NewCardStore creates an empty in-memory card store.
func NewCardStore() *CardStore {
	return &CardStore{items: make(map[uuid.UUID]cardRec)}
}

func (s *CardStore) Create(_ context.Context, c *models.Card) (*models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	out := *c
	out.ID = uuid.New()
	out.CreatedAt = now
	out.UpdatedAt = now
	s.items[out.ID] = cardRec{card: out, seq: nextSeq()}
	return &out, nil
}

func (s *CardStore) Update(_ context.Context, c *models.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.items[c.ID]
	if !ok {
		return fmt.Errorf("card %s not found", c.ID)
	}
	updated := *c
	updated.CreatedAt = rec.card.CreatedAt
	updated.UpdatedAt = time.Now()
	s.items[c.ID] = cardRec{card: updated, seq: rec.seq}
	return nil
}

func (s *CardStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("card %s not found", id)
	}
	delete(s.items, id)
	return nil
}

func (s *CardStore) FindByID(_ context.Context, id uuid.UUID) (*models.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	out := rec.card
	return &out, nil
}

func (s *CardStore) FindBySlug(_ context.Context, slug string, categoryID, subcategoryID uuid.UUID) (*models.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.items {
		if rec.card.Slug == slug && rec.card.CategoryID == categoryID && rec.card.SubcategoryID == subcategoryID {
			out := rec.card
			return &out, nil
		}
	}
	return nil, nil
}

func (s *CardStore) FindFirstBySlug(_ context.Context, slug string) (*models.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *cardRec
	for _, rec := range s.items {
		rec := rec
		if rec.card.Slug != slug {
			continue
		}
		if found == nil || rec.seq < found.seq {
			found = &rec
		}
	}
	if found == nil {
		return nil, nil
	}
	out := found.card
	return &out, nil
}

func (s *CardStore) List(_ context.Context) ([]models.Card, error) {
	return s.listWhere(func(models.Card) bool { return true }, 0), nil
}

func (s *CardStore) ListByBinding(_ context.Context, categoryID, subcategoryID uuid.UUID) ([]models.Card, error) {
	return s.listWhere(func(c models.Card) bool {
		return c.CategoryID == categoryID && c.SubcategoryID == subcategoryID
	}, 0), nil
}

func (s *CardStore) ListRecent(_ context.Context, subcategoryIDs []uuid.UUID, limit int) ([]models.Card, error) {
	want := make(map[uuid.UUID]bool, len(subcategoryIDs))
	for _, id := range subcategoryIDs {
		want[id] = true
	}
	return s.listWhere(func(c models.Card) bool { return want[c.SubcategoryID] }, limit), nil
}

// listWhere returns matching cards newest first, optionally limited.
func (s *CardStore) listWhere(match func(models.Card) bool, limit int) []models.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var recs []cardRec
	for _, rec := range s.items {
		if match(rec.card) {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq > recs[j].seq })
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}

	out := make([]models.Card, len(recs))
	for i, rec := range recs {
		out[i] = rec.card
	}
	return out
}

func (s *CardStore) CountByCategory(_ context.Context, categoryID uuid.UUID) (int, error) {
	return s.countWhere(func(c models.Card) bool { return c.CategoryID == categoryID }), nil
}

func (s *CardStore) CountBySubcategory(_ context.Context, subcategoryID uuid.UUID) (int, error) {
	return s.countWhere(func(c models.Card) bool { return c.SubcategoryID == subcategoryID }), nil
}

func (s *CardStore) countWhere(match func(models.Card) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, rec := range s.items {
		if match(rec.card) {
			n++
		}
	}
	return n
}

func (s *CardStore) DeleteByCategory(_ context.Context, categoryID uuid.UUID) (int64, error) {
	return s.deleteWhere(func(c models.Card) bool { return c.CategoryID == categoryID }), nil
}

func (s *CardStore) DeleteBySubcategory(_ context.Context, subcategoryID uuid.UUID) (int64, error) {
	return s.deleteWhere(func(c models.Card) bool { return c.SubcategoryID == subcategoryID }), nil
}

func (s *CardStore) deleteWhere(match func(models.Card) bool) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, rec := range s.items {
		if match(rec.card) {
			delete(s.items, id)
			n++
		}
	}
	return n
}

func (s *CardStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}
