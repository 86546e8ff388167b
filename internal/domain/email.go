package domain

import (
	"fmt"
	"strings"
)

// NormalizeEmail trims and lowercases an email address and applies the
// sign-in policy checks: the address must contain '@' and must not contain
// '+' (alias addresses are rejected to keep one identity per mailbox).
// This is policy validation, not RFC 5322 parsing.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", fmt.Errorf("email is required: %w", ErrBadRequest)
	}
	if strings.Contains(email, "+") {
		return "", fmt.Errorf("email must not contain '+': %w", ErrBadRequest)
	}
	if !strings.Contains(email, "@") {
		return "", fmt.Errorf("invalid email: %w", ErrBadRequest)
	}
	return email, nil
}
