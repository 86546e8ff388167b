package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-bingo-api/internal/application/community"
	"github.com/go-bingo-api/internal/domain"
	"github.com/go-bingo-api/internal/transport/http/middleware"
)

// CommunityHandler handles tossing cards and reading the shared feed.
type CommunityHandler struct {
	svc community.Service
}

func NewCommunityHandler(svc community.Service) *CommunityHandler {
	return &CommunityHandler{svc: svc}
}

// Toss handles POST /toss.
func (h *CommunityHandler) Toss(w http.ResponseWriter, r *http.Request) {
	a, ok := middleware.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var body struct {
		Card domain.Card `json:"card"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	tossID, err := h.svc.Toss(r.Context(), a.UserID, body.Card)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, OKEnvelope{OK: true, TossID: tossID})
}

// ListCards handles GET /community/cards. Public, card values only.
func (h *CommunityHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.ListCards(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CardsEnvelope{Cards: cards})
}
