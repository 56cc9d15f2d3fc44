package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"beatboost/internal/core/port"
)

// Readiness reports whether the backing store has finished loading.
type Readiness interface {
	Loading() bool
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it validates input, resolves the session identity and maps use case
// errors onto status codes.
type Handler struct {
	svc      port.CampaignUseCase
	sessions port.Session
	ready    Readiness
	validate *validator.Validate
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, sessions port.Session, ready Readiness, logger *slog.Logger) *Handler {
	h := &Handler{
		svc:      svc,
		sessions: sessions,
		ready:    ready,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.requireReady)

		r.Post("/session", h.handleLogin)
		r.Get("/session", h.handleCurrentSession)
		r.Delete("/session", h.handleLogout)
		r.Get("/campaigns", h.handleBrowseCampaigns)

		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)

			r.Post("/campaigns", h.handleCreateCampaign)
			r.Get("/campaigns/{campaignID}", h.handleCampaignDetail)
			r.Post("/campaigns/{campaignID}/payment", h.handlePayment)
			r.Post("/campaigns/{campaignID}/complete", h.handleCompleteCampaign)
			r.Get("/campaigns/{campaignID}/submissions", h.handleReviewQueue)
			r.Post("/campaigns/{campaignID}/submissions", h.handleSubmit)
			r.Post("/submissions/{submissionID}/review", h.handleReview)

			r.Get("/musician/dashboard", h.handleMusicianDashboard)
			r.Get("/creator/dashboard", h.handleCreatorDashboard)
			r.Get("/creator/submissions", h.handleCreatorSubmissions)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) loading() bool {
	return h.ready != nil && h.ready.Loading()
}

// requireReady answers 503 until the store has finished loading.
func (h *Handler) requireReady(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.loading() {
			w.Header().Set("Retry-After", "1")
			h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "store is loading"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	if h.loading() {
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "loading"})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
