package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue(Identity{Email: "hello@skylimitvisuals.com", Name: "Noah"})
	require.NoError(t, err)

	id, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "hello@skylimitvisuals.com", id.Email)
	assert.Equal(t, "Noah", id.Name)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	token, err := NewTokenService("secret-a").Issue(Identity{Email: "a@b.c"})
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbageRejected(t *testing.T) {
	_, err := NewTokenService("secret").Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpiredRejected(t *testing.T) {
	svc := NewTokenService("secret")
	svc.ttl = -time.Minute

	token, err := svc.Issue(Identity{Email: "a@b.c"})
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsAlgorithmConfusion(t *testing.T) {
	// A token signed with "none" must not verify even with valid claims.
	claims := jwt.RegisteredClaims{
		Subject:   "attacker@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService("secret").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestStateSignerRoundTrip(t *testing.T) {
	s := NewStateSigner("secret")

	state, err := s.Issue()
	require.NoError(t, err)
	assert.True(t, s.Check(state))
}

func TestStateSignerRejectsTampering(t *testing.T) {
	s := NewStateSigner("secret")
	state, err := s.Issue()
	require.NoError(t, err)

	assert.False(t, s.Check(state+"x"))
	assert.False(t, s.Check("forged.state.value"))
	assert.False(t, NewStateSigner("other-secret").Check(state))
}

func TestGoogleAuthURL(t *testing.T) {
	g := NewGoogleClient("client-id", "client-secret", "https://skylimitvisuals.com/api/auth/google/callback")

	raw := g.AuthURL("the-state")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "the-state", q.Get("state"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Contains(t, q.Get("scope"), "email")
}

func TestGoogleExchange(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "the-code", r.FormValue("code"))
		assert.Equal(t, "authorization_code", r.FormValue("grant_type"))
		json.NewEncoder(w).Encode(map[string]string{"access_token": "at-123"})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer at-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(GoogleUser{
			Email: "hello@skylimitvisuals.com", EmailVerified: true, Name: "Noah",
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	g := NewGoogleClient("id", "secret", "https://example.com/cb")
	g.tokenURL = srv.URL + "/token"
	g.userinfoURL = srv.URL + "/userinfo"

	user, err := g.Exchange(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "hello@skylimitvisuals.com", user.Email)
	assert.True(t, user.EmailVerified)
}

func TestGoogleExchangeErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	g := NewGoogleClient("id", "secret", "https://example.com/cb")
	g.tokenURL = srv.URL

	_, err := g.Exchange(context.Background(), "bad-code")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "status 400"))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "correct horse"))
	assert.False(t, VerifyPassword(hash, "wrong"))
	assert.False(t, VerifyPassword("", "anything"), "empty hash disables password sign-in")
}
