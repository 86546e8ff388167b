package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-bingo-api/internal/application/board"
	"github.com/go-bingo-api/internal/domain"
	"github.com/go-bingo-api/internal/transport/http/middleware"
)

// BoardHandler handles the token-gated board endpoints.
type BoardHandler struct {
	svc board.Service
}

func NewBoardHandler(svc board.Service) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// Save handles PUT /bingo3x3.
func (h *BoardHandler) Save(w http.ResponseWriter, r *http.Request) {
	a, ok := middleware.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var body struct {
		Cards []domain.Card `json:"cards"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.SaveBoard(r.Context(), a.UserID, body.Cards); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OKEnvelope{OK: true})
}

// Me handles GET /me: the authenticated user's profile, board included.
func (h *BoardHandler) Me(w http.ResponseWriter, r *http.Request) {
	a, ok := middleware.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	p, err := h.svc.GetProfile(r.Context(), a.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
