package community

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-bingo-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct{ mock.Mock }

func (m *mockStore) PutToss(ctx context.Context, tr *domain.Toss) error {
	return m.Called(ctx, tr).Error(0)
}

func (m *mockStore) ScanRecent(ctx context.Context, limit int32) ([]domain.Toss, error) {
	args := m.Called(ctx, limit)
	if ts, _ := args.Get(0).([]domain.Toss); ts != nil {
		return ts, args.Error(1)
	}
	return nil, args.Error(1)
}

func card(id string) domain.Card {
	return domain.Card{ID: id, Text: "t", BackgroundColor: "#abc"}
}

// --- Toss ---

func TestToss_InvalidCard_NoWrite(t *testing.T) {
	st := &mockStore{}
	svc := NewService(st)

	_, err := svc.Toss(context.Background(), "u1", domain.Card{Text: "no id"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	st.AssertNotCalled(t, "PutToss", mock.Anything, mock.Anything)
}

func TestToss_HappyPath_RecordShape(t *testing.T) {
	st := &mockStore{}
	st.On("PutToss", mock.Anything, mock.MatchedBy(func(tr *domain.Toss) bool {
		return tr.PK == domain.CommunityPK &&
			tr.SK == domain.TossSK(tr.TossedAt, tr.TossID) &&
			strings.HasPrefix(tr.SK, "TOSS#") &&
			tr.TossID != "" && tr.TossedAt != "" && tr.UserID == "u1"
	})).Return(nil)

	svc := NewService(st)
	tossID, err := svc.Toss(context.Background(), "u1", card("c1"))

	require.NoError(t, err)
	assert.NotEmpty(t, tossID)
	st.AssertExpectations(t)
}

func TestToss_IDsAreUnique(t *testing.T) {
	st := &mockStore{}
	st.On("PutToss", mock.Anything, mock.Anything).Return(nil)
	svc := NewService(st)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		tossID, err := svc.Toss(context.Background(), "u1", card("c1"))
		require.NoError(t, err)
		require.False(t, seen[tossID], "duplicate toss id %s", tossID)
		seen[tossID] = true
	}
}

func TestToss_SortKeyPreservesChronology(t *testing.T) {
	st := &mockStore{}
	var sks []string
	st.On("PutToss", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sks = append(sks, args.Get(1).(*domain.Toss).SK)
	}).Return(nil)
	svc := NewService(st)

	// Timestamps embed first in the sort key, so later tosses sort after
	// earlier ones whenever their timestamps differ.
	for i := 0; i < 5; i++ {
		_, err := svc.Toss(context.Background(), "u1", card("c1"))
		require.NoError(t, err)
	}
	for i := 1; i < len(sks); i++ {
		assert.GreaterOrEqual(t, sks[i], sks[i-1])
	}
}

// --- ListCards ---

func TestListCards_SortedNewestFirst(t *testing.T) {
	st := &mockStore{}
	st.On("ScanRecent", mock.Anything, int32(FeedScanLimit)).Return([]domain.Toss{
		{TossedAt: "2024-05-01T10:00:00Z", Card: card("older")},
		{TossedAt: "2024-05-03T10:00:00Z", Card: card("newest")},
		{TossedAt: "2024-05-02T10:00:00Z", Card: card("middle")},
	}, nil)

	svc := NewService(st)
	cards, err := svc.ListCards(context.Background())

	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, "newest", cards[0].ID)
	assert.Equal(t, "middle", cards[1].ID)
	assert.Equal(t, "older", cards[2].ID)
}

func TestListCards_FallsBackToSortKey(t *testing.T) {
	st := &mockStore{}
	st.On("ScanRecent", mock.Anything, int32(FeedScanLimit)).Return([]domain.Toss{
		{SK: "TOSS#2024-05-01T10:00:00Z#a", Card: card("older")},
		{SK: "TOSS#2024-05-02T10:00:00Z#b", Card: card("newer")},
	}, nil)

	svc := NewService(st)
	cards, err := svc.ListCards(context.Background())

	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "newer", cards[0].ID)
	assert.Equal(t, "older", cards[1].ID)
}

func TestListCards_SkipsRecordsWithoutCard(t *testing.T) {
	st := &mockStore{}
	st.On("ScanRecent", mock.Anything, int32(FeedScanLimit)).Return([]domain.Toss{
		{TossedAt: "2024-05-02T10:00:00Z", Card: card("kept")},
		{TossedAt: "2024-05-01T10:00:00Z", SK: "TOSS#2024-05-01T10:00:00Z#x"},
	}, nil)

	svc := NewService(st)
	cards, err := svc.ListCards(context.Background())

	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "kept", cards[0].ID)
}

func TestListCards_EmptyFeed(t *testing.T) {
	st := &mockStore{}
	st.On("ScanRecent", mock.Anything, int32(FeedScanLimit)).Return([]domain.Toss{}, nil)

	svc := NewService(st)
	cards, err := svc.ListCards(context.Background())

	require.NoError(t, err)
	assert.Empty(t, cards)
}
