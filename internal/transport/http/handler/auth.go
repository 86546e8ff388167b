package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-bingo-api/internal/application/auth"
)

// AuthHandler handles the magic-link endpoints. Both are public.
type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// IssueMagicLink handles POST /auth/magic-link.
func (h *AuthHandler) IssueMagicLink(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	link, err := h.svc.IssueMagicLink(r.Context(), body.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MagicLinkEnvelope{MagicLink: link})
}

// RedeemMagicLink handles GET /auth/magic-link-callback?code=...
func (h *AuthHandler) RedeemMagicLink(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "missing code")
		return
	}
	result, err := h.svc.Redeem(r.Context(), code)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
