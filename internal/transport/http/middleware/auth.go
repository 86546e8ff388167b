package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtinfra "github.com/go-bingo-api/internal/infrastructure/jwt"
)

type contextKey string

const authKey contextKey = "auth"

// AuthenticatedRequest is the unified "current user" value. It is constructed
// at the boundary from either authentication path, so downstream handlers
// never know which one produced it.
type AuthenticatedRequest struct {
	UserID string
}

// TokenResolver resolves an opaque bearer token to its owning user id.
type TokenResolver interface {
	LookupUserByToken(ctx context.Context, token string) (string, error)
}

// Auth returns middleware that resolves the caller identity and injects an
// AuthenticatedRequest into the request context. Two entry paths are
// accepted: a gateway-asserted identity claim (RS256 JWT, when verifier is
// configured) and a store-backed opaque bearer token. Both must name the
// same notion of current user.
func Auth(resolver TokenResolver, verifier *jwtinfra.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "missing or invalid authorization header")
				return
			}

			var userID string
			if verifier != nil {
				if sub, err := verifier.Subject(token); err == nil {
					userID = sub
				}
			}
			if userID == "" {
				uid, err := resolver.LookupUserByToken(r.Context(), token)
				if err != nil {
					writeJSONError(w, http.StatusUnauthorized, "invalid token")
					return
				}
				userID = uid
			}

			ctx := context.WithValue(r.Context(), authKey, &AuthenticatedRequest{UserID: userID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext extracts the authenticated request from the context.
func FromContext(ctx context.Context) (*AuthenticatedRequest, bool) {
	a, ok := ctx.Value(authKey).(*AuthenticatedRequest)
	return a, ok
}

// bearerToken extracts the credential from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", false
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
