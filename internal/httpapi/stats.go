// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package httpapi

import "net/http"

func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStatistics(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, "", stats)
}
