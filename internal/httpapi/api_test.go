// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"rajkhabar/internal/cache"
	"rajkhabar/internal/cms"
	"rajkhabar/internal/httpapi"
	"rajkhabar/internal/middleware"
	"rajkhabar/internal/router"
	"rajkhabar/internal/store/memory"
)

type testAPI struct {
	srv   *httptest.Server
	token string
}

func newTestAPI(t *testing.T) *testAPI {
	return newTestAPIWithTree(t, nil)
}

func newTestAPIWithTree(t *testing.T, tree *cache.TreeCache) *testAPI {
	t.Helper()

	svc := cms.New(memory.NewStores())
	h := httpapi.New(svc, tree, nil)
	tokenAuth := middleware.NewTokenAuth("test-secret")
	_, token, err := tokenAuth.Encode(map[string]interface{}{"sub": "admin"})
	require.NoError(t, err)

	srv := httptest.NewServer(router.New(h, tokenAuth))
	t.Cleanup(srv.Close)
	return &testAPI{srv: srv, token: token}
}

// do issues a request and decodes the response envelope.
func (a *testAPI) do(t *testing.T, method, path string, body any, authed bool) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, a.srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func TestAdminRoutesRequireToken(t *testing.T) {
	api := newTestAPI(t)

	status, env := api.do(t, http.MethodPost, "/api/v1/categories",
		map[string]any{"name": "News"}, false)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, false, env["success"])

	status, env = api.do(t, http.MethodPost, "/api/v1/categories",
		map[string]any{"name": "News"}, true)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, true, env["success"])
}

func TestCategoryLifecycleOverHTTP(t *testing.T) {
	api := newTestAPI(t)

	status, _ := api.do(t, http.MethodPost, "/api/v1/categories",
		map[string]any{"name": "News", "slug": "news"}, true)
	require.Equal(t, http.StatusCreated, status)

	// Duplicate slug maps to 409.
	status, env := api.do(t, http.MethodPost, "/api/v1/categories",
		map[string]any{"name": "More News", "slug": "news"}, true)
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, false, env["success"])

	// Public list sees the category without auth.
	status, env = api.do(t, http.MethodGet, "/api/v1/categories", nil, false)
	require.Equal(t, http.StatusOK, status)
	data, ok := env["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)

	// Unknown category maps to 404.
	status, _ = api.do(t, http.MethodDelete, "/api/v1/categories/ghost", nil, true)
	require.Equal(t, http.StatusNotFound, status)

	status, _ = api.do(t, http.MethodDelete, "/api/v1/categories/news", nil, true)
	require.Equal(t, http.StatusOK, status)
}

func TestPostFlowOverHTTP(t *testing.T) {
	api := newTestAPI(t)

	status, _ := api.do(t, http.MethodPost, "/api/v1/categories",
		map[string]any{"name": "News", "slug": "news"}, true)
	require.Equal(t, http.StatusCreated, status)
	status, _ = api.do(t, http.MethodPost, "/api/v1/subcategories",
		map[string]any{"name": "Headlines", "slug": "headlines", "type": "post", "parentSlug": "news"}, true)
	require.Equal(t, http.StatusCreated, status)

	status, env := api.do(t, http.MethodPost, "/api/v1/posts", map[string]any{
		"title":           "Hello",
		"categorySlug":    "news",
		"subCategorySlug": "headlines",
		"content":         map[string]any{"body": "text"},
		"status":          "published",
	}, true)
	require.Equal(t, http.StatusCreated, status)
	created, ok := env["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "hello", created["slug"])

	status, env = api.do(t, http.MethodGet, "/api/v1/posts/hello", nil, false)
	require.Equal(t, http.StatusOK, status)

	// Binding a post to a missing subcategory maps to 404.
	status, _ = api.do(t, http.MethodPost, "/api/v1/posts", map[string]any{
		"title":           "Orphan",
		"categorySlug":    "news",
		"subCategorySlug": "nope",
		"content":         map[string]any{"body": "text"},
	}, true)
	require.Equal(t, http.StatusNotFound, status)

	status, env = api.do(t, http.MethodGet, "/api/v1/posts?page=1&limit=10", nil, false)
	require.Equal(t, http.StatusOK, status)
	list, ok := env["data"].(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, 1, list["total"])
}

func TestBulkDeleteOverHTTP(t *testing.T) {
	api := newTestAPI(t)

	status, _ := api.do(t, http.MethodPost, "/api/v1/categories",
		map[string]any{"name": "News", "slug": "news"}, true)
	require.Equal(t, http.StatusCreated, status)

	status, env := api.do(t, http.MethodGet, "/api/v1/categories", nil, false)
	require.Equal(t, http.StatusOK, status)
	cats := env["data"].([]any)
	id := cats[0].(map[string]any)["id"].(string)

	// Malformed batch maps to 400.
	status, _ = api.do(t, http.MethodPost, "/api/v1/bulk-delete/categories",
		map[string]any{"ids": []string{"nope"}}, true)
	require.Equal(t, http.StatusBadRequest, status)

	// Unknown content type maps to 400.
	status, _ = api.do(t, http.MethodPost, "/api/v1/bulk-delete/widgets",
		map[string]any{"ids": []string{id}}, true)
	require.Equal(t, http.StatusBadRequest, status)

	status, env = api.do(t, http.MethodPost, "/api/v1/bulk-delete/categories",
		map[string]any{"ids": []string{id}, "force": false}, true)
	require.Equal(t, http.StatusOK, status)
	res := env["data"].(map[string]any)
	require.EqualValues(t, 1, res["deleted"])
}

func TestMediaUnavailableWithoutStorage(t *testing.T) {
	api := newTestAPI(t)

	status, env := api.do(t, http.MethodGet, "/api/v1/media/", nil, true)
	require.Equal(t, http.StatusServiceUnavailable, status)
	require.Equal(t, false, env["success"])
}

func TestBroadcastWithoutNotifierMaps503(t *testing.T) {
	api := newTestAPI(t)

	status, _ := api.do(t, http.MethodPost, "/api/v1/notifications/broadcast",
		map[string]any{"title": "Hi", "body": "There"}, true)
	require.Equal(t, http.StatusServiceUnavailable, status)
}

func TestCategoryTreeEndpoint(t *testing.T) {
	api := newTestAPI(t)

	status, _ := api.do(t, http.MethodPost, "/api/v1/categories",
		map[string]any{"name": "News", "slug": "news"}, true)
	require.Equal(t, http.StatusCreated, status)
	status, _ = api.do(t, http.MethodPost, "/api/v1/subcategories",
		map[string]any{"name": "Headlines", "slug": "headlines", "type": "post", "parentSlug": "news"}, true)
	require.Equal(t, http.StatusCreated, status)

	status, env := api.do(t, http.MethodGet, "/api/v1/categories/tree", nil, false)
	require.Equal(t, http.StatusOK, status)
	tree := env["data"].([]any)
	require.Len(t, tree, 1)
	news := tree[0].(map[string]any)
	subs := news["subcategories"].([]any)
	require.Len(t, subs, 1)
}
