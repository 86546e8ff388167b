package token

import "github.com/google/uuid"

// NewMagicCode generates a fresh opaque magic-link code. Version 4 UUIDs are
// drawn from crypto/rand, so codes are not guessable. The redeemed code
// doubles as the bearer token.
func NewMagicCode() string {
	return uuid.NewString()
}
