// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"rajkhabar/internal/cms"
	"rajkhabar/internal/models"
)

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req cms.CreatePostRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	p, err := h.svc.CreatePost(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondCreated(w, r, "post created", p)
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var req cms.UpdatePostRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	p, err := h.svc.UpdatePost(r.Context(), chi.URLParam(r, "postSlug"), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "post updated", p)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.DeletePost(r.Context(), chi.URLParam(r, "postSlug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "post deleted", p)
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPost(r.Context(), chi.URLParam(r, "postSlug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", p)
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 0)
	status := models.PostStatus(r.URL.Query().Get("status"))

	list, err := h.svc.ListPosts(r.Context(), page, limit, status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", list)
}

func (h *Handler) ListPostsByBinding(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 0)

	list, err := h.svc.ListPostsByBinding(r.Context(),
		chi.URLParam(r, "categorySlug"),
		chi.URLParam(r, "subCategorySlug"),
		page, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", list)
}

func (h *Handler) SearchPosts(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 0)

	list, err := h.svc.SearchPosts(r.Context(), r.URL.Query().Get("q"), page, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", list)
}
