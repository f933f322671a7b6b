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

type structureRec struct {
	ts  models.TableStructure
	seq int64
}

// TableStructureStore is the in-memory table structure collection.
type TableStructureStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]structureRec
}

// NewTableStructureStore creates an empty in-memory structure store.
func NewTableStructureStore() *TableStructureStore {
	return &TableStructureStore{items: make(map[uuid.UUID]structureRec)}
}

func (s *TableStructureStore) Create(_ context.Context, t *models.TableStructure) (*models.TableStructure, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	out := *t
	out.ID = uuid.New()
	out.CreatedAt = now
	out.UpdatedAt = now
	s.items[out.ID] = structureRec{ts: out, seq: nextSeq()}
	return &out, nil
}

func (s *TableStructureStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("table structure %s not found", id)
	}
	delete(s.items, id)
	return nil
}

func (s *TableStructureStore) FindByID(_ context.Context, id uuid.UUID) (*models.TableStructure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	out := rec.ts
	return &out, nil
}

func (s *TableStructureStore) FindBySlug(_ context.Context, slug string) (*models.TableStructure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.items {
		if rec.ts.Slug == slug {
			out := rec.ts
			return &out, nil
		}
	}
	return nil, nil
}

func (s *TableStructureStore) List(_ context.Context) ([]models.TableStructure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]structureRec, 0, len(s.items))
	for _, rec := range s.items {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	out := make([]models.TableStructure, len(recs))
	for i, rec := range recs {
		out[i] = rec.ts
	}
	return out, nil
}

func (s *TableStructureStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}
