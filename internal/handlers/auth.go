// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"skylimit/internal/auth"
	"skylimit/internal/config"
	"skylimit/internal/middleware"
)

// Auth serves the sign-in flow: Google OAuth for owners, the optional
// password route, and identity introspection.
type Auth struct {
	cfg    *config.Config
	google *auth.GoogleClient
	tokens *auth.TokenService
	states *auth.StateSigner
	log    *slog.Logger
}

// NewAuth creates the auth handler.
func NewAuth(cfg *config.Config, google *auth.GoogleClient, tokens *auth.TokenService, states *auth.StateSigner, log *slog.Logger) *Auth {
	return &Auth{cfg: cfg, google: google, tokens: tokens, states: states, log: log}
}

// GoogleStart redirects to the Google consent screen.
func (h *Auth) GoogleStart(w http.ResponseWriter, r *http.Request) {
	if !h.google.Configured() {
		writeError(w, http.StatusServiceUnavailable, "google sign-in is not configured")
		return
	}

	state, err := h.states.Issue()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not start sign-in")
		return
	}
	http.Redirect(w, r, h.google.AuthURL(state), http.StatusFound)
}

// GoogleCallback exchanges the authorization code, checks the owner
// allowlist, and issues a bearer token. Non-owners get a valid Google
// sign-in but no token.
func (h *Auth) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !h.states.Check(q.Get("state")) {
		writeError(w, http.StatusBadRequest, "invalid state")
		return
	}
	code := q.Get("code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "missing code")
		return
	}

	user, err := h.google.Exchange(r.Context(), code)
	if err != nil {
		h.log.Warn("google exchange failed", "error", err)
		writeError(w, http.StatusBadGateway, "google sign-in failed")
		return
	}

	if !user.EmailVerified || !h.cfg.IsOwner(user.Email) {
		h.log.Warn("sign-in rejected, not an owner", "email", user.Email)
		writeError(w, http.StatusForbidden, "this account is not allowed to edit the site")
		return
	}

	token, err := h.tokens.Issue(auth.Identity{Email: user.Email, Name: user.Name})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	h.log.Info("owner signed in", "email", user.Email)

	// The UI picks the token up from the fragment so it never hits server
	// logs as a query parameter.
	http.Redirect(w, r, "/#token="+url.QueryEscape(token), http.StatusFound)
}

// PasswordLogin signs an owner in with the configured password. Disabled
// unless OWNER_PASSWORD_HASH is set.
func (h *Auth) PasswordLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if !h.cfg.IsOwner(body.Email) || !auth.VerifyPassword(h.cfg.OwnerPasswordHash, body.Password) {
		h.log.Warn("password sign-in rejected", "email", body.Email)
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.tokens.Issue(auth.Identity{Email: body.Email})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	h.log.Info("owner signed in", "email", body.Email, "method", "password")
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Logout acknowledges sign-out. Tokens are stateless; the client discards
// its copy.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Me returns the verified identity on the request.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, id)
}
