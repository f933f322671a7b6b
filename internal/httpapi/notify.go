// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package httpapi

import (
	"net/http"

	"rajkhabar/internal/cms"
)

// Broadcast pushes a notification to every device that has notifications
// enabled and reports how many tokens were targeted.
func (h *Handler) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string            `json:"title"`
		Body  string            `json:"body"`
		Data  map[string]string `json:"data"`
	}
	if err := decode(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	sent, err := h.svc.SendNotificationToAll(r.Context(), cms.Notification{
		Title: req.Title,
		Body:  req.Body,
		Data:  req.Data,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "notification sent", struct {
		Recipients int `json:"recipients"`
	}{Recipients: sent})
}
