package httpadapter

import (
	"context"
	"net/http"

	"beatboost/internal/core/domain"
	"beatboost/internal/core/port"
)

type identityKey struct{}

func identityFrom(ctx context.Context) domain.Identity {
	id, _ := ctx.Value(identityKey{}).(domain.Identity)
	return id
}

// requireSession resolves the current identity and rejects the request
// with 401 when nobody is logged in.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok, err := h.sessions.Current(r.Context())
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		if !ok {
			h.writeError(w, r, port.ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey{}, user)))
	})
}

type loginRequest struct {
	Username string      `json:"username" validate:"required"`
	Role     domain.Role `json:"role" validate:"required,oneof=musician creator"`
}

// handleLogin logs a user from the fixed directory in. Unknown usernames
// produce HTTP 400.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decode(w, r, &req) {
		return
	}
	user, err := h.sessions.Login(r.Context(), req.Username, req.Role)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

func (h *Handler) handleCurrentSession(w http.ResponseWriter, r *http.Request) {
	user, ok, err := h.sessions.Current(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !ok {
		h.writeError(w, r, port.ErrUnauthenticated)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
