package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-bingo-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCommunitySvc struct{ mock.Mock }

func (m *mockCommunitySvc) Toss(ctx context.Context, userID string, card domain.Card) (string, error) {
	args := m.Called(ctx, userID, card)
	return args.String(0), args.Error(1)
}

func (m *mockCommunitySvc) ListCards(ctx context.Context) ([]domain.Card, error) {
	args := m.Called(ctx)
	if cs, _ := args.Get(0).([]domain.Card); cs != nil {
		return cs, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- Toss ---

func TestToss_NoAuth(t *testing.T) {
	h := NewCommunityHandler(&mockCommunitySvc{})
	r := httptest.NewRequest(http.MethodPost, "/toss", nil)
	rr := httptest.NewRecorder()
	h.Toss(rr, r)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestToss_InvalidBody(t *testing.T) {
	h := NewCommunityHandler(&mockCommunitySvc{})
	r := httptest.NewRequest(http.MethodPost, "/toss", bytes.NewBufferString("not-json"))
	r.Header.Set("Authorization", "Bearer good-token")
	rr := httptest.NewRecorder()
	serveAuthed("u1", http.HandlerFunc(h.Toss), rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestToss_InvalidCard(t *testing.T) {
	svc := &mockCommunitySvc{}
	svc.On("Toss", mock.Anything, "u1", mock.Anything).Return("", domain.ErrBadRequest)
	h := NewCommunityHandler(svc)
	body, _ := json.Marshal(map[string]interface{}{"card": domain.Card{Text: "no id"}})
	r := httptest.NewRequest(http.MethodPost, "/toss", bytes.NewReader(body))
	r.Header.Set("Authorization", "Bearer good-token")
	rr := httptest.NewRecorder()
	serveAuthed("u1", http.HandlerFunc(h.Toss), rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestToss_HappyPath_Returns201(t *testing.T) {
	svc := &mockCommunitySvc{}
	card := domain.Card{ID: "c1", Text: "t", BackgroundColor: "#abc"}
	svc.On("Toss", mock.Anything, "u1", card).Return("toss-1", nil)
	h := NewCommunityHandler(svc)
	body, _ := json.Marshal(map[string]interface{}{"card": card})
	r := httptest.NewRequest(http.MethodPost, "/toss", bytes.NewReader(body))
	r.Header.Set("Authorization", "Bearer good-token")
	rr := httptest.NewRecorder()
	serveAuthed("u1", http.HandlerFunc(h.Toss), rr, r)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp OKEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "toss-1", resp.TossID)
	svc.AssertExpectations(t)
}

// --- ListCards ---

func TestListCards_Public_NoAuthNeeded(t *testing.T) {
	svc := &mockCommunitySvc{}
	svc.On("ListCards", mock.Anything).Return([]domain.Card{
		{ID: "c2", BackgroundColor: "#abc"},
		{ID: "c1", BackgroundColor: "#def"},
	}, nil)
	h := NewCommunityHandler(svc)
	r := httptest.NewRequest(http.MethodGet, "/community/cards", nil)
	rr := httptest.NewRecorder()
	h.ListCards(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp CardsEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Cards, 2)
	assert.Equal(t, "c2", resp.Cards[0].ID)
}

func TestListCards_EmptyFeed(t *testing.T) {
	svc := &mockCommunitySvc{}
	svc.On("ListCards", mock.Anything).Return([]domain.Card{}, nil)
	h := NewCommunityHandler(svc)
	r := httptest.NewRequest(http.MethodGet, "/community/cards", nil)
	rr := httptest.NewRecorder()
	h.ListCards(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp CardsEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Empty(t, resp.Cards)
}
