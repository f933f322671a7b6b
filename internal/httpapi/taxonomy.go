// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rajkhabar/internal/cms"
)

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req cms.CreateCategoryRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	c, err := h.svc.CreateCategory(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.invalidateTree(r)
	respondCreated(w, r, "category created", c)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req cms.UpdateCategoryRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	c, err := h.svc.UpdateCategory(r.Context(), chi.URLParam(r, "categorySlug"), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.invalidateTree(r)
	respondOK(w, r, "category updated", c)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.DeleteCategory(r.Context(), chi.URLParam(r, "categorySlug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.invalidateTree(r)
	respondOK(w, r, "category deleted", res)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", cats)
}

// CategoryTree serves the full taxonomy tree. The serialized envelope is
// cached in Valkey; writes to categories or subcategories invalidate it.
func (h *Handler) CategoryTree(w http.ResponseWriter, r *http.Request) {
	if payload, ok := h.tree.Get(r.Context()); ok {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(payload)
		return
	}

	tree, err := h.svc.CategoryTree(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	body, err := json.Marshal(envelope{Success: true, Data: tree})
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.tree.Set(r.Context(), body)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *Handler) CategoryOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.CategoryOverview(r.Context(),
		chi.URLParam(r, "categorySlug"),
		r.URL.Query().Get("subCategorySlug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", ov)
}

func (h *Handler) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	var req cms.CreateSubcategoryRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	sub, err := h.svc.CreateSubcategory(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.invalidateTree(r)
	respondCreated(w, r, "subcategory created", sub)
}

func (h *Handler) UpdateSubcategory(w http.ResponseWriter, r *http.Request) {
	var req cms.UpdateSubcategoryRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	sub, err := h.svc.UpdateSubcategory(r.Context(), chi.URLParam(r, "subCategorySlug"), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.invalidateTree(r)
	respondOK(w, r, "subcategory updated", sub)
}

func (h *Handler) DeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	sub, err := h.svc.DeleteSubcategory(r.Context(), chi.URLParam(r, "subCategorySlug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.invalidateTree(r)
	respondOK(w, r, "subcategory deleted", sub)
}

func (h *Handler) ListSubcategories(w http.ResponseWriter, r *http.Request) {
	subs, err := h.svc.ListSubcategories(r.Context(), chi.URLParam(r, "categorySlug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", subs)
}

func (h *Handler) invalidateTree(r *http.Request) {
	h.tree.Invalidate(r.Context())
}
