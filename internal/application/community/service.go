package community

import (
	"context"
	"sort"
	"time"

	"github.com/go-bingo-api/internal/domain"
	"github.com/go-bingo-api/internal/pkg/id"
)

// FeedScanLimit bounds how many toss records one feed read examines.
const FeedScanLimit = 50

// Store is what the community service needs from the feed table.
type Store interface {
	PutToss(ctx context.Context, t *domain.Toss) error
	ScanRecent(ctx context.Context, limit int32) ([]domain.Toss, error)
}

// Service publishes cards to the community feed and reads it back.
type Service interface {
	// Toss appends one card to the feed and returns the generated toss id.
	Toss(ctx context.Context, userID string, card domain.Card) (string, error)

	// ListCards returns up to FeedScanLimit cards, newest first. The read is
	// a bounded scan, so under heavy write volume it is a best-effort view
	// rather than the guaranteed latest records.
	ListCards(ctx context.Context) ([]domain.Card, error)
}

type service struct {
	store Store
}

func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) Toss(ctx context.Context, userID string, card domain.Card) (string, error) {
	if err := card.Validate(); err != nil {
		return "", err
	}

	tossedAt := domain.Timestamp(time.Now())
	tossID := id.New()
	t := &domain.Toss{
		PK:       domain.CommunityPK,
		SK:       domain.TossSK(tossedAt, tossID),
		TossID:   tossID,
		TossedAt: tossedAt,
		UserID:   userID,
		Card:     card,
	}
	if err := s.store.PutToss(ctx, t); err != nil {
		return "", err
	}
	return tossID, nil
}

func (s *service) ListCards(ctx context.Context) ([]domain.Card, error) {
	tosses, err := s.store.ScanRecent(ctx, FeedScanLimit)
	if err != nil {
		return nil, err
	}

	sort.Slice(tosses, func(i, j int) bool {
		return sortKey(tosses[i]) > sortKey(tosses[j])
	})

	cards := make([]domain.Card, 0, len(tosses))
	for _, t := range tosses {
		// Records without a card attribute unmarshal to a zero value; skip
		// them instead of feeding blanks into the feed.
		if t.Card.ID == "" {
			continue
		}
		cards = append(cards, t.Card)
	}
	return cards, nil
}

// sortKey orders the feed newest-first by tossedAt, falling back to the
// stored sort key for records that predate the tossedAt attribute.
func sortKey(t domain.Toss) string {
	if t.TossedAt != "" {
		return t.TossedAt
	}
	return t.SK
}
