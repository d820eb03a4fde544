// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// GoogleUser is the profile returned by a successful code exchange.
type GoogleUser struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// GoogleClient performs the OAuth authorization-code exchange against
// Google's endpoints.
type GoogleClient struct {
	clientID     string
	clientSecret string
	redirectURL  string
	client       *http.Client

	// Endpoint overrides for tests.
	authURL     string
	tokenURL    string
	userinfoURL string
}

// NewGoogleClient creates a GoogleClient for the given OAuth credentials.
func NewGoogleClient(clientID, clientSecret, redirectURL string) *GoogleClient {
	return &GoogleClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURL:  redirectURL,
		client:       &http.Client{Timeout: 15 * time.Second},
		authURL:      "https://accounts.google.com/o/oauth2/v2/auth",
		tokenURL:     "https://oauth2.googleapis.com/token",
		userinfoURL:  "https://openidconnect.googleapis.com/v1/userinfo",
	}
}

// Configured reports whether OAuth credentials are present.
func (g *GoogleClient) Configured() bool {
	return g.clientID != "" && g.clientSecret != ""
}

// AuthURL returns the consent-screen URL the sign-in flow redirects to.
func (g *GoogleClient) AuthURL(state string) string {
	q := url.Values{}
	q.Set("client_id", g.clientID)
	q.Set("redirect_uri", g.redirectURL)
	q.Set("response_type", "code")
	q.Set("scope", "openid email profile")
	q.Set("state", state)
	return g.authURL + "?" + q.Encode()
}

// Exchange trades an authorization code for the signed-in user's profile.
func (g *GoogleClient) Exchange(ctx context.Context, code string) (*GoogleUser, error) {
	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", g.clientID)
	form.Set("client_secret", g.clientSecret)
	form.Set("redirect_uri", g.redirectURL)
	form.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("google token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google token http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("google token read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google token error (status %d): %s", resp.StatusCode, string(body))
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("google token decode: %w", err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("google token response missing access_token")
	}

	return g.userinfo(ctx, token.AccessToken)
}

// userinfo fetches the profile for an access token.
func (g *GoogleClient) userinfo(ctx context.Context, accessToken string) (*GoogleUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userinfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("google userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google userinfo http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("google userinfo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo error (status %d): %s", resp.StatusCode, string(body))
	}

	var user GoogleUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("google userinfo decode: %w", err)
	}
	if user.Email == "" {
		return nil, fmt.Errorf("google userinfo missing email")
	}
	return &user, nil
}
