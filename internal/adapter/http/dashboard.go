package httpadapter

import "net/http"

func (h *Handler) handleMusicianDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.MusicianDashboard(r.Context(), identityFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, d)
}

func (h *Handler) handleCreatorDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.CreatorDashboard(r.Context(), identityFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, d)
}
