package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-bingo-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper: a human-readable message
// for errors and acknowledgements.
type MessageEnvelope struct {
	Message string `json:"message"`
}

// MagicLinkEnvelope wraps a magic-link issuance response.
type MagicLinkEnvelope struct {
	MagicLink string `json:"magicLink"`
}

// OKEnvelope acknowledges a mutation.
type OKEnvelope struct {
	OK     bool   `json:"ok"`
	TossID string `json:"tossId,omitempty"`
}

// CardsEnvelope wraps the community feed response.
type CardsEnvelope struct {
	Cards []domain.Card `json:"cards"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Message: msg})
}

// writeServiceError maps domain sentinel errors onto HTTP status codes.
// Anything unrecognised is a 500 with its message surfaced.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
