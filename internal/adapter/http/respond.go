package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"beatboost/internal/core/port"
)

type errorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps use case errors onto HTTP status codes. Unexpected
// errors are logged and reported as 500 without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, port.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, port.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, port.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, port.ErrDuplicateSubmission), errors.Is(err, port.ErrCampaignNotActive):
		status = http.StatusConflict
	case errors.Is(err, port.ErrInvalidStatus), errors.Is(err, port.ErrInvalidRole), errors.Is(err, port.ErrInvalidCredentials):
		status = http.StatusBadRequest
	default:
		h.logger.Error("request error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// decode reads a JSON body into dst and validates it. It writes the 400
// response itself and returns false on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		resp := errorResponse{Error: "validation failed", Details: map[string]string{}}
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				resp.Details[fe.Field()] = fe.Tag()
			}
		}
		h.writeJSON(w, http.StatusBadRequest, resp)
		return false
	}
	return true
}

// pathID parses a positive integer path parameter.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}
