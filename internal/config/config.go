// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"APP_PORT" envDefault:"8080"`
	Env  string `env:"APP_ENV" envDefault:"development"` // "development", "production", "testing"

	// PostgreSQL connection
	DBHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	DBPort     string `env:"POSTGRES_PORT" envDefault:"5432"`
	DBUser     string `env:"POSTGRES_USER" envDefault:"skylimit"`
	DBPassword string `env:"POSTGRES_PASSWORD" envDefault:"changeme"`
	DBName     string `env:"POSTGRES_DB" envDefault:"skylimit"`

	// Valkey (Redis-compatible cache)
	ValkeyHost     string `env:"VALKEY_HOST" envDefault:"localhost"`
	ValkeyPort     string `env:"VALKEY_PORT" envDefault:"6379"`
	ValkeyPassword string `env:"VALKEY_PASSWORD"`

	// S3-compatible object storage for site media
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Bucket    string `env:"S3_BUCKET" envDefault:"skylimit-media"`
	S3PublicURL string `env:"S3_PUBLIC_URL"` // CDN or direct URL for public objects

	// Google OAuth — the single sign-in method for site owners.
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `env:"GOOGLE_REDIRECT_URL"`

	// OwnerEmails is the comma-separated allowlist of Google accounts that
	// may edit site content.
	OwnerEmails []string `env:"OWNER_EMAILS" envSeparator:","`

	// JWTSecret signs bearer tokens issued after a successful sign-in.
	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`

	// OwnerPasswordHash optionally enables password sign-in for owners
	// (bcrypt hash). Empty disables the password route; Google OAuth is
	// the primary method.
	OwnerPasswordHash string `env:"OWNER_PASSWORD_HASH"`

	// HubSpot Forms ingestion (contact pipeline, best-effort leg)
	HubSpotPortalID string `env:"HUBSPOT_PORTAL_ID"`
	HubSpotFormID   string `env:"HUBSPOT_FORM_ID"`

	// Resend transactional email (contact pipeline, best-effort leg)
	ResendAPIKey string `env:"RESEND_API_KEY"`
	ContactFrom  string `env:"CONTACT_FROM" envDefault:"website@skylimitvisuals.com"`
	ContactTo    string `env:"CONTACT_TO" envDefault:"hello@skylimitvisuals.com"`
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
		if cfg.JWTSecret == "dev-secret-change-me" {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		if len(cfg.OwnerEmails) == 0 {
			return nil, fmt.Errorf("OWNER_EMAILS must be set in production")
		}
	}

	// Normalize allowlist entries so lookups are case-insensitive.
	for i, e := range cfg.OwnerEmails {
		cfg.OwnerEmails[i] = strings.ToLower(strings.TrimSpace(e))
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsOwner reports whether the given email is on the owner allowlist.
func (c *Config) IsOwner(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, e := range c.OwnerEmails {
		if e == email {
			return true
		}
	}
	return false
}
