package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-bingo-api/internal/domain"
	"github.com/go-bingo-api/internal/infrastructure/dynamo"
	"github.com/google/uuid"
)

// Store is what the resolver needs from the identity table.
type Store interface {
	GetEmailUser(ctx context.Context, email string) (*domain.EmailUser, error)
	TryCreateEmailUser(ctx context.Context, m *domain.EmailUser) (dynamo.CreateResult, error)
	FindProfileByToken(ctx context.Context, token string) (*domain.Profile, error)
}

// Service resolves durable user identities from emails and bearer tokens.
type Service interface {
	// ResolveOrCreateUser returns the user id for an email, creating the
	// mapping on first sight. Safe under concurrent redemption of the same
	// email: the insert is conditional and a lost race adopts the winner.
	ResolveOrCreateUser(ctx context.Context, email string) (string, error)

	// LookupUserByToken resolves a bearer token to its owning user id.
	// The backing mechanism (v1: profile scan) is swappable behind this
	// interface without touching any caller.
	LookupUserByToken(ctx context.Context, token string) (string, error)
}

type service struct {
	store Store
}

func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) ResolveOrCreateUser(ctx context.Context, email string) (string, error) {
	m, err := s.store.GetEmailUser(ctx, email)
	if err == nil {
		return m.UserID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}

	candidate := &domain.EmailUser{
		PK:        domain.EmailPK(email),
		SK:        domain.SKUser,
		Email:     email,
		UserID:    uuid.NewString(),
		CreatedAt: domain.Timestamp(time.Now()),
	}
	res, err := s.store.TryCreateEmailUser(ctx, candidate)
	if err != nil {
		return "", err
	}
	if res == dynamo.Created {
		return candidate.UserID, nil
	}

	// A concurrent request inserted the mapping first. Re-read and adopt the
	// winning user id so no email ever maps to two identities.
	winner, err := s.store.GetEmailUser(ctx, email)
	if err != nil {
		return "", fmt.Errorf("re-read email mapping after lost race: %w", err)
	}
	return winner.UserID, nil
}

func (s *service) LookupUserByToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("missing token: %w", domain.ErrUnauthorized)
	}
	p, err := s.store.FindProfileByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
		}
		return "", err
	}
	return p.UserID, nil
}
