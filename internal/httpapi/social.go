// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"rajkhabar/internal/cms"
	"rajkhabar/internal/models"
)

func (h *Handler) CreateSocialLink(w http.ResponseWriter, r *http.Request) {
	var req cms.CreateSocialLinkRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	link, err := h.svc.CreateSocialLink(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondCreated(w, r, "social link created", link)
}

func (h *Handler) UpdateSocialLink(w http.ResponseWriter, r *http.Request) {
	var req cms.UpdateSocialLinkRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	link, err := h.svc.UpdateSocialLink(r.Context(), chi.URLParam(r, "linkSlug"), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "social link updated", link)
}

func (h *Handler) DeleteSocialLink(w http.ResponseWriter, r *http.Request) {
	link, err := h.svc.DeleteSocialLink(r.Context(), chi.URLParam(r, "linkSlug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "social link deleted", link)
}

func (h *Handler) ListSocialLinks(w http.ResponseWriter, r *http.Request) {
	linkType := models.SocialLinkType(r.URL.Query().Get("type"))
	links, err := h.svc.ListSocialLinks(r.Context(), linkType)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", links)
}
