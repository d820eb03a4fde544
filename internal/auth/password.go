// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

package auth

import "golang.org/x/crypto/bcrypt"

// VerifyPassword checks a plaintext password against the configured bcrypt
// hash. An empty hash means password sign-in is disabled.
func VerifyPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashPassword produces a bcrypt hash suitable for OWNER_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(h), err
}
