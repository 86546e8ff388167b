package http

import (
	"github.com/go-bingo-api/internal/application/auth"
	"github.com/go-bingo-api/internal/application/board"
	"github.com/go-bingo-api/internal/application/community"
	"github.com/go-bingo-api/internal/application/identity"
	jwtinfra "github.com/go-bingo-api/internal/infrastructure/jwt"
	"github.com/go-bingo-api/internal/infrastructure/smtp"
)

// IdentityStore is the full surface the identity table backs. Each service
// declares the slice it needs; the router hands them all the same store.
type IdentityStore interface {
	identity.Store
	auth.Store
	board.Store
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	IdentityRepo  IdentityStore
	CommunityRepo community.Store
	Mailer        smtp.Mailer

	// ClaimsVerifier is optional: when nil, only store-backed bearer tokens
	// authenticate protected routes.
	ClaimsVerifier *jwtinfra.Verifier
}
