// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"rajkhabar/internal/cms"
)

func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req cms.CreateCardRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	c, err := h.svc.CreateCard(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondCreated(w, r, "card created", c)
}

func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	var req cms.UpdateCardRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	c, err := h.svc.UpdateCard(r.Context(), chi.URLParam(r, "cardSlug"), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "card updated", c)
}

func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.DeleteCard(r.Context(),
		chi.URLParam(r, "categorySlug"),
		chi.URLParam(r, "subCategorySlug"),
		chi.URLParam(r, "cardSlug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "card deleted", c)
}

func (h *Handler) GetCard(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCard(r.Context(), chi.URLParam(r, "cardSlug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", c)
}

func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.ListCards(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", cards)
}

func (h *Handler) ListCardsByBinding(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.ListCardsByBinding(r.Context(),
		chi.URLParam(r, "categorySlug"),
		chi.URLParam(r, "subCategorySlug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", cards)
}
