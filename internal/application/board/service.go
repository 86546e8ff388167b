package board

import (
	"context"
	"time"

	"github.com/go-bingo-api/internal/domain"
)

// Store is what the board service needs from the identity table.
type Store interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID string, attrs map[string]interface{}) error
}

// Service persists and reads a user's 3x3 board.
type Service interface {
	// SaveBoard overwrites the user's board. All-or-nothing: the full set of
	// cards is validated before any write, and the board plus updatedAt land
	// in a single update. Concurrent saves are last-write-wins.
	SaveBoard(ctx context.Context, userID string, cards []domain.Card) error

	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
}

type service struct {
	store Store
}

func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) SaveBoard(ctx context.Context, userID string, cards []domain.Card) error {
	if err := domain.ValidateBoard(cards); err != nil {
		return err
	}
	return s.store.UpdateProfile(ctx, userID, map[string]interface{}{
		"board":     cards,
		"updatedAt": domain.Timestamp(time.Now()),
	})
}

func (s *service) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.store.GetProfile(ctx, userID)
}
