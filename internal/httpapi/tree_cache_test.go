// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

// tree_cache_test.go covers the cached tree endpoint against a real
// Valkey instance. Tests are skipped if Valkey is unavailable.
package httpapi_test

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"rajkhabar/internal/cache"
)

// testTreeCache returns a tree cache over a real Valkey client, skipping
// the test when Valkey is not reachable.
func testTreeCache(t *testing.T) *cache.TreeCache {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "taxonomy:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return cache.NewTreeCache(client, 1*time.Minute)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func treeLen(t *testing.T, api *testAPI) int {
	t.Helper()
	status, env := api.do(t, http.MethodGet, "/api/v1/categories/tree", nil, false)
	require.Equal(t, http.StatusOK, status)
	tree, ok := env["data"].([]any)
	require.True(t, ok)
	return len(tree)
}

func TestBulkDeleteInvalidatesTreeCache(t *testing.T) {
	api := newTestAPIWithTree(t, testTreeCache(t))

	status, _ := api.do(t, http.MethodPost, "/api/v1/categories",
		map[string]any{"name": "News", "slug": "news"}, true)
	require.Equal(t, http.StatusCreated, status)
	status, env := api.do(t, http.MethodPost, "/api/v1/categories",
		map[string]any{"name": "Sports", "slug": "sports"}, true)
	require.Equal(t, http.StatusCreated, status)
	id := env["data"].(map[string]any)["id"].(string)

	// Warm the cache.
	require.Equal(t, 2, treeLen(t, api))

	status, _ = api.do(t, http.MethodPost, "/api/v1/bulk-delete/categories",
		map[string]any{"ids": []string{id}}, true)
	require.Equal(t, http.StatusOK, status)

	// The bulk delete must drop the cached tree, not serve the stale copy
	// for the remainder of the TTL.
	require.Equal(t, 1, treeLen(t, api))
}

func TestSingleDeleteInvalidatesTreeCache(t *testing.T) {
	api := newTestAPIWithTree(t, testTreeCache(t))

	status, _ := api.do(t, http.MethodPost, "/api/v1/categories",
		map[string]any{"name": "News", "slug": "news"}, true)
	require.Equal(t, http.StatusCreated, status)

	require.Equal(t, 1, treeLen(t, api))

	status, _ = api.do(t, http.MethodDelete, "/api/v1/categories/news", nil, true)
	require.Equal(t, http.StatusOK, status)

	require.Equal(t, 0, treeLen(t, api))
}
