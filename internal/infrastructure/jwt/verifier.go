package jwtinfra

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"

	"github.com/go-bingo-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Verifier checks RS256 identity-claim tokens minted by an upstream gateway.
// The gateway authenticates the caller and asserts the user id as the token
// subject; this service only verifies the signature and extracts the subject.
type Verifier struct {
	publicKey *rsa.PublicKey
}

func NewVerifier(cfg *config.Config) (*Verifier, error) {
	pubBytes, err := os.ReadFile(cfg.ClaimsPublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read claims public key: %w", err)
	}
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM(pubBytes)
	if err != nil {
		return nil, fmt.Errorf("parse claims public key: %w", err)
	}
	return &Verifier{publicKey: pubKey}, nil
}

// Subject verifies the token and returns its subject claim (the user id).
func (v *Verifier) Subject(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.publicKey, nil
	})
	if err != nil {
		return "", err
	}
	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", errors.New("missing subject claim")
	}
	return sub, nil
}
