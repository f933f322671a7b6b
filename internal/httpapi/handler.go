// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

// Package httpapi exposes the content engine as a JSON REST API. Handlers
// decode requests, call into the cms service, and translate its errors to
// HTTP status codes; no business rules live here.
package httpapi

import (
	"rajkhabar/internal/cache"
	"rajkhabar/internal/cms"
	"rajkhabar/internal/storage"
)

// Handler bundles the dependencies shared by all endpoint groups.
type Handler struct {
	svc   *cms.Service
	tree  *cache.TreeCache
	media *storage.Client
}

// New creates the API handler set. tree and media may be nil; the
// corresponding endpoints then degrade (tree uncached, media 503).
func New(svc *cms.Service, tree *cache.TreeCache, media *storage.Client) *Handler {
	return &Handler{svc: svc, tree: tree, media: media}
}
