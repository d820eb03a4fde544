// Copyright (c) 2026 Sky Limit Visuals <hello@skylimitvisuals.com>
// All rights reserved. See LICENSE for details.

// Package router wires the HTTP route surface: public content and media
// reads, authenticated writes, the derived collections, the contact
// pipeline, and sign-in.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"skylimit/internal/auth"
	"skylimit/internal/handlers"
	"skylimit/internal/middleware"
)

// Deps carries what the router needs. Media may be nil when object
// storage is not configured; its routes then answer 503.
type Deps struct {
	Log     *slog.Logger
	Tokens  *auth.TokenService
	Content *handlers.Content
	Media   *handlers.Media
	Records *handlers.Records
	Contact *handlers.Contact
	Auth    *handlers.Auth
}

// New creates the configured chi router.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer(d.Log))
	r.Use(middleware.Logger(d.Log))
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadIdentity(d.Tokens))

	r.Get("/health", healthHandler)

	// The contact form and sign-in are the abuse-prone public writes.
	publicWriteLimiter := middleware.NewRateLimiter(rate.Limit(0.5), 5)

	r.Route("/api", func(r chi.Router) {
		// Text content.
		r.Get("/content/{collection}/{document}", d.Content.GetDocument)
		r.Get("/content/{collection}/{document}/{field}", d.Content.GetField)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Put("/content/{collection}/{document}/{field}", d.Content.PutField)
		})

		// Media.
		if d.Media != nil {
			r.Get("/images", d.Media.ListAssets)
			r.Get("/images/{id}", d.Media.GetAsset)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/images", d.Media.Upload)
				r.Delete("/images/*", d.Media.Remove)
			})
		} else {
			r.HandleFunc("/images", noStorageHandler)
			r.HandleFunc("/images/*", noStorageHandler)
		}

		// Derived collections.
		r.Route("/"+handlers.CollectionPattern, func(r chi.Router) {
			r.Get("/", d.Records.List)
			r.Get("/{id}", d.Records.Get)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/", d.Records.Create)
				r.Put("/{id}", d.Records.Put)
				r.Delete("/{id}", d.Records.Delete)
			})
		})

		// Contact pipeline.
		r.With(publicWriteLimiter.Middleware).Post("/contact", d.Contact.Submit)

		// Sign-in.
		r.Route("/auth", func(r chi.Router) {
			r.Get("/google", d.Auth.GoogleStart)
			r.Get("/google/callback", d.Auth.GoogleCallback)
			r.With(publicWriteLimiter.Middleware).Post("/login", d.Auth.PasswordLogin)
			r.Post("/logout", d.Auth.Logout)
			r.Get("/me", d.Auth.Me)
		})
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func noStorageHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	w.Write([]byte(`{"error":"media storage is not configured"}`))
}
