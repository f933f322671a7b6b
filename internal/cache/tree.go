// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

// tree.go provides the Valkey-backed cache for the assembled category
// tree. The tree is the app's navigation payload and is requested on
// every cold start, so it is cached as serialized JSON and invalidated
// whenever the taxonomy changes.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// treeKey is the Valkey key holding the serialized category tree.
	treeKey = "taxonomy:tree"

	// DefaultTreeTTL bounds staleness if an invalidation is ever missed.
	DefaultTreeTTL = 10 * time.Minute
)

// TreeCache manages the cached category tree in Valkey. A nil TreeCache
// is valid and disables caching.
type TreeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTreeCache creates a tree cache backed by the given Valkey client.
func NewTreeCache(client *redis.Client, ttl time.Duration) *TreeCache {
	if ttl == 0 {
		ttl = DefaultTreeTTL
	}
	return &TreeCache{client: client, ttl: ttl}
}

// Get retrieves the cached tree JSON. Returns (nil, false) on miss or
// when caching is disabled.
func (tc *TreeCache) Get(ctx context.Context) ([]byte, bool) {
	if tc == nil {
		return nil, false
	}
	val, err := tc.client.Get(ctx, treeKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("tree cache get error", "error", err)
		return nil, false
	}
	slog.Debug("tree cache hit")
	return val, true
}

// Set stores the serialized tree with the configured TTL.
func (tc *TreeCache) Set(ctx context.Context, payload []byte) {
	if tc == nil {
		return
	}
	if err := tc.client.Set(ctx, treeKey, payload, tc.ttl).Err(); err != nil {
		slog.Warn("tree cache set error", "error", err)
	}
}

// Invalidate drops the cached tree. Called after any category or
// subcategory write.
func (tc *TreeCache) Invalidate(ctx context.Context) {
	if tc == nil {
		return
	}
	if err := tc.client.Del(ctx, treeKey).Err(); err != nil {
		slog.Warn("tree cache invalidate error", "error", err)
	}
	slog.Debug("tree cache invalidated")
}
