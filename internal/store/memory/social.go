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

type socialRec struct {
	link models.SocialLink
	seq  int64
}

// SocialLinkStore is the in-memory social link collection.
type SocialLinkStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]socialRec
}

// NewSocialLinkStore creates an empty in-memory social link store.
func NewSocialLinkStore() *SocialLinkStore {
	return &SocialLinkStore{items: make(map[uuid.UUID]socialRec)}
}

func (s *SocialLinkStore) Create(_ context.Context, l *models.SocialLink) (*models.SocialLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	out := *l
	out.ID = uuid.New()
	out.CreatedAt = now
	out.UpdatedAt = now
	s.items[out.ID] = socialRec{link: out, seq: nextSeq()}
	return &out, nil
}

func (s *SocialLinkStore) Update(_ context.Context, l *models.SocialLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.items[l.ID]
	if !ok {
		return fmt.Errorf("social link %s not found", l.ID)
	}
	updated := *l
	updated.CreatedAt = rec.link.CreatedAt
	updated.UpdatedAt = time.Now()
	s.items[l.ID] = socialRec{link: updated, seq: rec.seq}
	return nil
}

func (s *SocialLinkStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("social link %s not found", id)
	}
	delete(s.items, id)
	return nil
}

func (s *SocialLinkStore) FindByID(_ context.Context, id uuid.UUID) (*models.SocialLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	out := rec.link
	return &out, nil
}

func (s *SocialLinkStore) FindBySlug(_ context.Context, slug string) (*models.SocialLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.items {
		if rec.link.Slug == slug {
			out := rec.link
			return &out, nil
		}
	}
	return nil, nil
}

func (s *SocialLinkStore) List(_ context.Context) ([]models.SocialLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]socialRec, 0, len(s.items))
	for _, rec := range s.items {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	out := make([]models.SocialLink, len(recs))
	for i, rec := range recs {
		out[i] = rec.link
	}
	return out, nil
}

func (s *SocialLinkStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}
