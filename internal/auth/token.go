// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

// Package auth is the write-path gate: Google OAuth sign-in restricted to
// the owner allowlist, optional password sign-in, and the bearer tokens
// both issue. Edit affordances in the UI hide themselves from anonymous
// viewers; this package is the server-side check behind them.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated principal carried by a bearer token.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Claims is the JWT payload for an issued token.
type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenTTL is how long an issued bearer token stays valid.
const TokenTTL = 24 * time.Hour

var (
	// ErrInvalidToken is returned for a token that fails parsing,
	// signature verification, or expiry.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNotOwner is returned when a sign-in succeeds upstream but the
	// account is not on the owner allowlist.
	ErrNotOwner = errors.New("account is not an owner")
)

// TokenService issues and verifies HS256 bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: TokenTTL}
}

// Issue signs a bearer token for the identity.
func (s *TokenService) Issue(id Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		Name: id.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Email,
			Issuer:    "skylimit",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a bearer token, returning the identity it
// carries.
func (s *TokenService) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{Email: claims.Subject, Name: claims.Name}, nil
}
