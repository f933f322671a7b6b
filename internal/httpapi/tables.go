// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"rajkhabar/internal/cms"
	"rajkhabar/internal/models"
)

func (h *Handler) CreateTableStructure(w http.ResponseWriter, r *http.Request) {
	var req cms.CreateTableStructureRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	ts, err := h.svc.CreateTableStructure(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondCreated(w, r, "table structure created", ts)
}

func (h *Handler) GetTableStructure(w http.ResponseWriter, r *http.Request) {
	ts, err := h.svc.GetTableStructure(r.Context(), chi.URLParam(r, "structureSlug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", ts)
}

func (h *Handler) ListTableStructures(w http.ResponseWriter, r *http.Request) {
	structures, err := h.svc.ListTableStructures(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", structures)
}

func (h *Handler) CreateTableRow(w http.ResponseWriter, r *http.Request) {
	var req cms.CreateTableRowRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	row, err := h.svc.CreateTableRow(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondCreated(w, r, "table post created", row)
}

func (h *Handler) UpdateTableRow(w http.ResponseWriter, r *http.Request) {
	var req cms.UpdateTableRowRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	row, err := h.svc.UpdateTableRow(r.Context(), chi.URLParam(r, "rowSlug"), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "table post updated", row)
}

func (h *Handler) DeleteTableRow(w http.ResponseWriter, r *http.Request) {
	row, err := h.svc.DeleteTableRow(r.Context(), chi.URLParam(r, "rowSlug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "table post deleted", row)
}

func (h *Handler) GetTableRow(w http.ResponseWriter, r *http.Request) {
	row, err := h.svc.GetTableRow(r.Context(), chi.URLParam(r, "rowSlug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", row)
}

// ListTableRowsByBinding returns the rows of one table-typed subcategory
// together with the column schema the client needs to render them.
func (h *Handler) ListTableRowsByBinding(w http.ResponseWriter, r *http.Request) {
	rows, structure, err := h.svc.ListTableRowsByBinding(r.Context(),
		chi.URLParam(r, "categorySlug"),
		chi.URLParam(r, "subCategorySlug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", struct {
		Rows      []models.TableRow      `json:"tablePosts"`
		Structure *models.TableStructure `json:"tableStructure"`
	}{Rows: rows, Structure: structure})
}
