// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"rajkhabar/internal/cms"
)

// envelope is the uniform response shape: {success, message, data}. The
// mobile app keys off success, not the HTTP status alone.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respond(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	render.Status(r, status)
	render.JSON(w, r, envelope{Success: true, Message: message, Data: data})
}

func respondCreated(w http.ResponseWriter, r *http.Request, message string, data any) {
	respond(w, r, http.StatusCreated, message, data)
}

func respondOK(w http.ResponseWriter, r *http.Request, message string, data any) {
	respond(w, r, http.StatusOK, message, data)
}

// respondError classifies a service error into an HTTP status. Dependency
// refusals carry their counts in data so the admin panel can render the
// confirmation dialog.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var data any

	switch {
	case errors.Is(err, cms.ErrCategoryNotFound),
		errors.Is(err, cms.ErrSubcategoryNotFound),
		errors.Is(err, cms.ErrTableStructureNotFound),
		errors.Is(err, cms.ErrContentNotFound):
		status = http.StatusNotFound

	case errors.Is(err, cms.ErrDuplicateSlug),
		errors.Is(err, cms.ErrTypeMismatch),
		errors.Is(err, cms.ErrHeaderExists),
		errors.Is(err, cms.ErrHasDependents):
		status = http.StatusConflict

	case errors.Is(err, cms.ErrValidation),
		errors.Is(err, cms.ErrColumnCountMismatch),
		errors.Is(err, cms.ErrMissingLinkType),
		errors.Is(err, cms.ErrInvalidID),
		errors.Is(err, cms.ErrUnsupportedContentType):
		status = http.StatusBadRequest

	case errors.Is(err, cms.ErrNotifierUnavailable):
		status = http.StatusServiceUnavailable
	}

	var dep *cms.DependencyError
	if errors.As(err, &dep) {
		data = dep
	}

	if status == http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		render.Status(r, status)
		render.JSON(w, r, envelope{Success: false, Message: "internal server error"})
		return
	}

	render.Status(r, status)
	render.JSON(w, r, envelope{Success: false, Message: err.Error(), Data: data})
}

// decode parses a JSON request body.
func decode(r *http.Request, v any) error {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		return cms.ErrValidation
	}
	return nil
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or not a number.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
