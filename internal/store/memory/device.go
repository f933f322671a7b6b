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

type deviceRec struct {
	dev models.Device
	seq int64
}

// DeviceStore is the in-memory device registry.
type DeviceStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]deviceRec
}

// NewDeviceStore creates an empty in-memory device store.
func NewDeviceStore() *DeviceStore {
	return &DeviceStore{items: make(map[uuid.UUID]deviceRec)}
}

func (s *DeviceStore) Create(_ context.Context, d *models.Device) (*models.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	out := *d
	out.ID = uuid.New()
	out.CreatedAt = now
	out.UpdatedAt = now
	s.items[out.ID] = deviceRec{dev: out, seq: nextSeq()}
	return &out, nil
}

func (s *DeviceStore) Update(_ context.Context, d *models.Device) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.items[d.ID]
	if !ok {
		return fmt.Errorf("device %s not found", d.ID)
	}
	updated := *d
	updated.CreatedAt = rec.dev.CreatedAt
	updated.UpdatedAt = time.Now()
	s.items[d.ID] = deviceRec{dev: updated, seq: rec.seq}
	return nil
}

func (s *DeviceStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("device %s not found", id)
	}
	delete(s.items, id)
	return nil
}

func (s *DeviceStore) FindByDeviceID(_ context.Context, deviceID string) (*models.Device, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.items {
		if rec.dev.DeviceID == deviceID {
			out := rec.dev
			return &out, nil
		}
	}
	return nil, nil
}

func (s *DeviceStore) List(_ context.Context) ([]models.Device, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]deviceRec, 0, len(s.items))
	for _, rec := range s.items {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	out := make([]models.Device, len(recs))
	for i, rec := range recs {
		out[i] = rec.dev
	}
	return out, nil
}

func (s *DeviceStore) ListEnabledTokens(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tokens []string
	for _, rec := range s.items {
		if rec.dev.NotificationEnabled && rec.dev.FCMToken != "" {
			tokens = append(tokens, rec.dev.FCMToken)
		}
	}
	return tokens, nil
}

func (s *DeviceStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}
