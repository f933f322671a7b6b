// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"rajkhabar/internal/cms"
	"rajkhabar/internal/store"
)

func (h *Handler) CreateHeaderComponent(w http.ResponseWriter, r *http.Request) {
	var req cms.CreateHeaderComponentRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	hc, err := h.svc.CreateHeaderComponent(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondCreated(w, r, "header component created", hc)
}

func (h *Handler) UpdateHeaderComponent(w http.ResponseWriter, r *http.Request) {
	var req cms.UpdateHeaderComponentRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	hc, err := h.svc.UpdateHeaderComponent(r.Context(),
		chi.URLParam(r, "categorySlug"),
		chi.URLParam(r, "subCategorySlug"),
		chi.URLParam(r, "headerSlug"),
		req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "header component updated", hc)
}

func (h *Handler) DeleteHeaderComponent(w http.ResponseWriter, r *http.Request) {
	hc, err := h.svc.DeleteHeaderComponent(r.Context(),
		chi.URLParam(r, "categorySlug"),
		chi.URLParam(r, "subCategorySlug"),
		chi.URLParam(r, "headerSlug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "header component deleted", hc)
}

// GetHeaderComponent returns the single header of a subcategory, or null
// data when none exists; a missing header is not an error for the client.
func (h *Handler) GetHeaderComponent(w http.ResponseWriter, r *http.Request) {
	hc, err := h.svc.GetHeaderComponent(r.Context(),
		chi.URLParam(r, "categorySlug"),
		chi.URLParam(r, "subCategorySlug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", hc)
}

func (h *Handler) ListHeaderComponents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := store.HeaderFilter{
		CategorySlug:    q.Get("parentSlug"),
		SubcategorySlug: q.Get("subCategorySlug"),
		Search:          q.Get("q"),
		Limit:           queryInt(r, "limit", 0),
	}
	list, err := h.svc.ListHeaderComponents(r.Context(), f, queryInt(r, "page", 1))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", list)
}
