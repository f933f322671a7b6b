// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// bulkDeleteRequest is the body of every bulk delete call. Force skips the
// dependency guard and cascades instead of refusing.
type bulkDeleteRequest struct {
	IDs   []string `json:"ids"`
	Force bool     `json:"force"`
}

// BulkDelete dispatches on the contentType path segment and deletes the
// listed ids. Partial failures are reported per id in the result, with
// success still true; only a malformed batch is rejected outright.
func (h *Handler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	contentType := chi.URLParam(r, "contentType")
	res, err := h.svc.UniversalBulkDelete(r.Context(), contentType, req.IDs, req.Force)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if contentType == "categories" || contentType == "subcategories" {
		h.invalidateTree(r)
	}
	respondOK(w, r, "bulk delete completed", res)
}
