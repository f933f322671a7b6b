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

type postRec struct {
	post models.Post
	seq  int64
}

// PostStore is the in-memory post collection.
type PostStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]postRec
}

// NewPostStore creates an empty in-memory post store.
func NewPostStore() *PostStore {
	return &PostStore{items: make(map[uuid.UUID]postRec)}
}

func (s *PostStore) Create(_ context.Context, p *models.Post) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	out := *p
	out.ID = uuid.New()
	out.CreatedAt = now
	out.UpdatedAt = now
	s.items[out.ID] = postRec{post: out, seq: nextSeq()}
	return &out, nil
}

func (s *PostStore) Update(_ context.Context, p *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.items[p.ID]
	if !ok {
		return fmt.Errorf("post %s not found", p.ID)
	}
	updated := *p
	updated.CreatedAt = rec.post.CreatedAt
	updated.UpdatedAt = time.Now()
	s.items[p.ID] = postRec{post: updated, seq: rec.seq}
	return nil
}

func (s *PostStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("post %s not found", id)
	}
	delete(s.items, id)
	return nil
}

func (s *PostStore) FindByID(_ context.Context, id uuid.UUID) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	out := rec.post
	return &out, nil
}

func (s *PostStore) FindBySlug(_ context.Context, slug string) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.items {
		if rec.post.Slug == slug {
			out := rec.post
			return &out, nil
		}
	}
	return nil, nil
}

func matchPost(p models.Post, f store.PostFilter) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(f.Search)) {
		return false
	}
	if f.CategoryID != uuid.Nil && p.CategoryID != f.CategoryID {
		return false
	}
	if f.SubcategoryID != uuid.Nil && p.SubcategoryID != f.SubcategoryID {
		return false
	}
	if f.CarouselVisible && !p.VisibleInCarousel {
		return false
	}
	return true
}

func (s *PostStore) List(_ context.Context, f store.PostFilter) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var recs []postRec
	for _, rec := range s.items {
		if matchPost(rec.post, f) {
			recs = append(recs, rec)
		}
	}
	// Newest first.
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

	out := make([]models.Post, len(recs))
	for i, rec := range recs {
		out[i] = rec.post
	}
	return out, nil
}

func (s *PostStore) CountFiltered(_ context.Context, f store.PostFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, rec := range s.items {
		if matchPost(rec.post, f) {
			n++
		}
	}
	return n, nil
}

func (s *PostStore) ListRecent(_ context.Context, subcategoryIDs []uuid.UUID, limit int) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := make(map[uuid.UUID]bool, len(subcategoryIDs))
	for _, id := range subcategoryIDs {
		want[id] = true
	}

	var recs []postRec
	for _, rec := range s.items {
		if want[rec.post.SubcategoryID] && rec.post.Status == models.PostStatusPublished {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq > recs[j].seq })
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}

	out := make([]models.Post, len(recs))
	for i, rec := range recs {
		out[i] = rec.post
	}
	return out, nil
}

func (s *PostStore) CountByCategory(_ context.Context, categoryID uuid.UUID) (int, error) {
	return s.countWhere(func(p models.Post) bool { return p.CategoryID == categoryID }), nil
}

func (s *PostStore) CountBySubcategory(_ context.Context, subcategoryID uuid.UUID) (int, error) {
	return s.countWhere(func(p models.Post) bool { return p.SubcategoryID == subcategoryID }), nil
}

func (s *PostStore) CountByStatus(_ context.Context, status models.PostStatus) (int, error) {
	return s.countWhere(func(p models.Post) bool { return p.Status == status }), nil
}

func (s *PostStore) countWhere(match func(models.Post) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, rec := range s.items {
		if match(rec.post) {
			n++
		}
	}
	return n
}

func (s *PostStore) DeleteByCategory(_ context.Context, categoryID uuid.UUID) (int64, error) {
	return s.deleteWhere(func(p models.Post) bool { return p.CategoryID == categoryID }), nil
}

func (s *PostStore) DeleteBySubcategory(_ context.Context, subcategoryID uuid.UUID) (int64, error) {
	return s.deleteWhere(func(p models.Post) bool { return p.SubcategoryID == subcategoryID }), nil
}

func (s *PostStore) deleteWhere(match func(models.Post) bool) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, rec := range s.items {
		if match(rec.post) {
			delete(s.items, id)
			n++
		}
	}
	return n
}

func (s *PostStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}
