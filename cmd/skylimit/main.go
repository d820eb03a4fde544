// Package main is the entry point for the Sky Limit Visuals content
// server. It loads configuration, connects to services, wires the
// resolution layer, and starts the HTTP server with graceful shutdown.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skylimit/internal/auth"
	"skylimit/internal/bus"
	"skylimit/internal/cache"
	"skylimit/internal/config"
	"skylimit/internal/content"
	"skylimit/internal/crm"
	"skylimit/internal/database"
	"skylimit/internal/handlers"
	"skylimit/internal/imaging"
	"skylimit/internal/mailer"
	"skylimit/internal/router"
	"skylimit/internal/storage"
	"skylimit/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr())

	// PostgreSQL: text overrides, collection records, contact submissions.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Valkey: resolved asset descriptor cache.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		logger.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()
	assetCache := cache.NewAssetCache(valkeyClient, cache.DefaultAssetTTL)

	// libvips for dimension probing and gallery renditions.
	imaging.Startup(0)
	defer imaging.Shutdown()

	// S3-compatible storage for site media (optional; the app serves
	// catalog fallbacks without it).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		logger.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient == nil {
		logger.Warn("s3 storage not configured, media uploads disabled")
	} else {
		logger.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	}

	// Stores.
	contentStore := store.NewContentStore(db)
	recordStore := store.NewRecordStore(db)
	contactStore := store.NewContactStore(db)

	// The notification bus and the resolution layer over it.
	notifications := bus.New()
	textResolver := content.NewTextResolver(contentStore, notifications, logger)

	var mediaResolver *content.MediaResolver
	var mediaHandler *handlers.Media
	if storageClient != nil {
		mediaResolver = content.NewMediaResolver(
			storageClient, assetCache, notifications, logger,
			func(data []byte) (int, int, error) { return imaging.Probe(data) },
		)
		mediaHandler = handlers.NewMedia(mediaResolver, imaging.GenerateRenditions, logger)
	}

	// Auth: Google OAuth gated by the owner allowlist, stateless bearer
	// tokens.
	tokens := auth.NewTokenService(cfg.JWTSecret)
	googleClient := auth.NewGoogleClient(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
	states := auth.NewStateSigner(cfg.JWTSecret)

	// Contact pipeline collaborators.
	hubspot := crm.NewHubSpot(cfg.HubSpotPortalID, cfg.HubSpotFormID)
	resend := mailer.NewResend(cfg.ResendAPIKey, cfg.ContactFrom, cfg.ContactTo)

	r := router.New(router.Deps{
		Log:     logger,
		Tokens:  tokens,
		Content: handlers.NewContent(textResolver),
		Media:   mediaHandler,
		Records: handlers.NewRecords(recordStore, mediaResolver, logger),
		Contact: handlers.NewContact(hubspot, contactStore, resend, logger),
		Auth:    handlers.NewAuth(cfg, googleClient, tokens, states, logger),
	})

	// WriteTimeout accommodates large media uploads.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}
