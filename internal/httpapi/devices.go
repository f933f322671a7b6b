// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"rajkhabar/internal/cms"
)

func (h *Handler) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	var req cms.RegisterDeviceRequest
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	d, err := h.svc.RegisterDevice(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "device registered", d)
}

func (h *Handler) SetDeviceNotifications(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Enabled bool `json:"notificationEnabled"`
	}
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	d, err := h.svc.SetDeviceNotifications(r.Context(), chi.URLParam(r, "deviceId"), req.Enabled)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "notification preference updated", d)
}

func (h *Handler) UnregisterDevice(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.UnregisterDevice(r.Context(), chi.URLParam(r, "deviceId")); err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "device unregistered", nil)
}

func (h *Handler) ListDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := h.svc.ListDevices(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", devices)
}
