package httpadapter

import (
	"net/http"

	"beatboost/internal/core/port"
)

type createCampaignRequest struct {
	Title           string `json:"title" validate:"required"`
	MusicLink       string `json:"musicLink" validate:"required,url"`
	Description     string `json:"description"`
	Instructions    string `json:"instructions"`
	VideosOrdered   int    `json:"videosOrdered" validate:"omitempty,min=40"`
	PaymentPerVideo int64  `json:"paymentPerVideo" validate:"omitempty,min=1"`
}

// handleCreateCampaign creates a campaign for the logged-in musician and
// returns it with HTTP 201. A missing video count defaults to the minimum
// order of 40.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), identityFrom(r.Context()), port.CampaignInput{
		Title:           req.Title,
		MusicLink:       req.MusicLink,
		Description:     req.Description,
		Instructions:    req.Instructions,
		VideosOrdered:   req.VideosOrdered,
		PaymentPerVideo: req.PaymentPerVideo,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

// handleBrowseCampaigns lists active campaigns. The optional `q` query
// parameter filters on title and description.
func (h *Handler) handleBrowseCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.BrowseCampaigns(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

func (h *Handler) handleCampaignDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "campaignID")
	if !ok {
		return
	}
	detail, err := h.svc.CampaignDetail(r.Context(), identityFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}

// handlePayment runs the simulated payment. It blocks for the configured
// processor delay; a client disconnect cancels it.
func (h *Handler) handlePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "campaignID")
	if !ok {
		return
	}
	res, err := h.svc.PayForCampaign(r.Context(), identityFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleCompleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "campaignID")
	if !ok {
		return
	}
	c, err := h.svc.CompleteCampaign(r.Context(), identityFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}
