// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// stateTTL bounds how long an OAuth round trip may take.
const stateTTL = 10 * time.Minute

// StateSigner issues and checks the OAuth state parameter: a random nonce
// plus an expiry, HMAC-signed so the callback can verify the flow started
// here without any server-side session.
type StateSigner struct {
	secret []byte
}

// NewStateSigner creates a StateSigner keyed with the given secret.
func NewStateSigner(secret string) *StateSigner {
	return &StateSigner{secret: []byte(secret)}
}

// Issue returns a fresh signed state value.
func (s *StateSigner) Issue() (string, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("state nonce: %w", err)
	}

	payload := base64.RawURLEncoding.EncodeToString(nonce) + "." +
		strconv.FormatInt(time.Now().Add(stateTTL).Unix(), 10)
	return payload + "." + s.sign(payload), nil
}

// Check verifies a state value's signature and expiry.
func (s *StateSigner) Check(state string) bool {
	i := strings.LastIndex(state, ".")
	if i < 0 {
		return false
	}
	payload, sig := state[:i], state[i+1:]
	if !hmac.Equal([]byte(s.sign(payload)), []byte(sig)) {
		return false
	}

	parts := strings.Split(payload, ".")
	if len(parts) != 2 {
		return false
	}
	exp, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return false
	}
	return time.Now().Unix() <= exp
}

func (s *StateSigner) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
