// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package httpapi

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"rajkhabar/internal/cms"
)

const maxUploadSize = 32 << 20 // 32 MiB

// allowedMediaTypes is the upload allowlist: post images and PDF
// attachments (exam results, admit cards).
var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"image/gif":       true,
	"application/pdf": true,
}

// mediaUnavailable reports whether the media gateway is configured,
// answering 503 when it is not.
func (h *Handler) mediaUnavailable(w http.ResponseWriter, r *http.Request) bool {
	if h.media == nil {
		render503(w, r)
		return true
	}
	return false
}

func render503(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusServiceUnavailable)
	w.Write([]byte(`{"success":false,"message":"media storage not configured"}`))
}

func formFile(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, nil, fmt.Errorf("%w: multipart form required", cms.ErrValidation)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: file field is required", cms.ErrValidation)
	}
	if ct := header.Header.Get("Content-Type"); !allowedMediaTypes[ct] {
		file.Close()
		return nil, nil, fmt.Errorf("%w: unsupported file type %q", cms.ErrValidation, ct)
	}
	return file, header, nil
}

// UploadMedia stores one file under the given folder and returns its
// public URL.
func (h *Handler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if h.mediaUnavailable(w, r) {
		return
	}
	file, header, err := formFile(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	defer file.Close()

	folder := r.FormValue("folder")
	if folder == "" {
		folder = "uploads"
	}
	url, err := h.media.Upload(r.Context(), folder, header.Filename,
		header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondCreated(w, r, "file uploaded", struct {
		URL string `json:"url"`
	}{URL: url})
}

// ReplaceMedia uploads a new file and removes the old one named by the
// oldUrl form field.
func (h *Handler) ReplaceMedia(w http.ResponseWriter, r *http.Request) {
	if h.mediaUnavailable(w, r) {
		return
	}
	file, header, err := formFile(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	defer file.Close()

	folder := r.FormValue("folder")
	if folder == "" {
		folder = "uploads"
	}
	url, err := h.media.Replace(r.Context(), r.FormValue("oldUrl"), folder,
		header.Filename, header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "file replaced", struct {
		URL string `json:"url"`
	}{URL: url})
}

func (h *Handler) ListMedia(w http.ResponseWriter, r *http.Request) {
	if h.mediaUnavailable(w, r) {
		return
	}
	files, err := h.media.List(r.Context(), r.URL.Query().Get("folder"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", files)
}

// DeleteMedia removes a stored file. The target is given either as a raw
// object key or as the public URL the upload returned.
func (h *Handler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	if h.mediaUnavailable(w, r) {
		return
	}
	var req struct {
		Key string `json:"key"`
		URL string `json:"url"`
	}
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	key := req.Key
	if key == "" && req.URL != "" {
		if k, ok := h.media.ExtractKey(req.URL); ok {
			key = k
		}
	}
	if key == "" {
		respondError(w, r, fmt.Errorf("%w: key or url is required", cms.ErrValidation))
		return
	}
	if err := h.media.Delete(r.Context(), key); err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "file deleted", nil)
}
