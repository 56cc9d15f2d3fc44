package httpadapter

import (
	"net/http"

	"beatboost/internal/core/domain"
)

type submitRequest struct {
	VideoLink string `json:"videoLink" validate:"required,url,contains=tiktok.com"`
}

type reviewRequest struct {
	Status domain.SubmissionStatus `json:"status" validate:"required,oneof=approved rejected"`
}

// handleSubmit records the logged-in creator's video for a campaign. A
// second submission to the same campaign yields HTTP 409.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "campaignID")
	if !ok {
		return
	}
	var req submitRequest
	if !h.decode(w, r, &req) {
		return
	}
	sub, err := h.svc.Submit(r.Context(), identityFrom(r.Context()), id, req.VideoLink)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, sub)
}

func (h *Handler) handleReviewQueue(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "campaignID")
	if !ok {
		return
	}
	q, err := h.svc.ReviewQueue(r.Context(), identityFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, q)
}

func (h *Handler) handleReview(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "submissionID")
	if !ok {
		return
	}
	var req reviewRequest
	if !h.decode(w, r, &req) {
		return
	}
	sub, err := h.svc.Review(r.Context(), identityFrom(r.Context()), id, req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sub)
}

func (h *Handler) handleCreatorSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.svc.CreatorSubmissions(r.Context(), identityFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, subs)
}
