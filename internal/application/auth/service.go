package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-bingo-api/internal/domain"
	"github.com/go-bingo-api/internal/infrastructure/dynamo"
	"github.com/go-bingo-api/internal/infrastructure/smtp"
	pkgtoken "github.com/go-bingo-api/internal/pkg/token"
)

// CallbackPath is the redemption endpoint the emailed link points at.
const CallbackPath = "/auth/magic-link-callback"

// Store is what the magic-link flow needs from the identity table.
type Store interface {
	PutMagicCode(ctx context.Context, mc *domain.MagicCode) error
	FindMagicCodeByCode(ctx context.Context, code string) (*domain.MagicCode, error)
	TryCreateProfile(ctx context.Context, p *domain.Profile) (dynamo.CreateResult, error)
	UpdateProfile(ctx context.Context, userID string, attrs map[string]interface{}) error
}

// IdentityResolver resolves or creates the durable identity for an email.
type IdentityResolver interface {
	ResolveOrCreateUser(ctx context.Context, email string) (string, error)
}

// RedeemResult is returned on successful code redemption. Token is the
// redeemed code itself: v1 conflates the one-time login code with the
// long-lived session token, and neither expires.
type RedeemResult struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Service implements the magic-link flow: issue a code for an email, redeem
// a code into a bearer token and a stable user identity.
type Service interface {
	IssueMagicLink(ctx context.Context, email string) (string, error)
	Redeem(ctx context.Context, code string) (*RedeemResult, error)
}

type service struct {
	store    Store
	resolver IdentityResolver
	mailer   smtp.Mailer
	baseURL  string
}

func NewService(store Store, resolver IdentityResolver, mailer smtp.Mailer, baseURL string) Service {
	return &service{store: store, resolver: resolver, mailer: mailer, baseURL: baseURL}
}

func (s *service) IssueMagicLink(ctx context.Context, email string) (string, error) {
	email, err := domain.NormalizeEmail(email)
	if err != nil {
		return "", err
	}

	code := pkgtoken.NewMagicCode()
	mc := &domain.MagicCode{
		PK:        domain.EmailPK(email),
		SK:        domain.SKMagic,
		Email:     email,
		Code:      code,
		CreatedAt: domain.Timestamp(time.Now()),
	}
	// Unconditional put: re-issuing invalidates any earlier code for this
	// email because redemption matches against the stored record.
	if err := s.store.PutMagicCode(ctx, mc); err != nil {
		return "", err
	}

	link := fmt.Sprintf("%s%s?code=%s", s.baseURL, CallbackPath, code)
	if err := s.mailer.SendEmail(email, "Your sign-in link", "Sign in: "+link); err != nil {
		return "", fmt.Errorf("send magic link email: %w", err)
	}
	slog.Info("magic link issued", "email", email)
	return link, nil
}

func (s *service) Redeem(ctx context.Context, code string) (*RedeemResult, error) {
	if code == "" {
		return nil, fmt.Errorf("missing code: %w", domain.ErrBadRequest)
	}

	mc, err := s.store.FindMagicCodeByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("invalid code: %w", domain.ErrNotFound)
		}
		return nil, err
	}

	userID, err := s.resolver.ResolveOrCreateUser(ctx, mc.Email)
	if err != nil {
		return nil, err
	}

	now := domain.Timestamp(time.Now())

	// Insert-only profile create: first redemption sets createdAt, every
	// later one leaves the existing profile alone. AlreadyExists is success.
	_, err = s.store.TryCreateProfile(ctx, &domain.Profile{
		PK:        domain.UserPK(userID),
		SK:        domain.SKProfile,
		UserID:    userID,
		Email:     mc.Email,
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	// Always rewrite the auth token and login time, never createdAt.
	if err := s.store.UpdateProfile(ctx, userID, map[string]interface{}{
		"authToken":   code,
		"lastLoginAt": now,
	}); err != nil {
		return nil, err
	}

	slog.Info("magic link redeemed", "userId", userID)
	return &RedeemResult{Token: code, UserID: userID, Email: mc.Email}, nil
}
