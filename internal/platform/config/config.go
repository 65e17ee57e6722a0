// Copyright (c) 2026 Toma Beauty. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, Storage) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Toma Beauty API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Cryptographic keys for access token signing
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH,required"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required"`

	// Object Storage (S3-compatible) for ingested article images
	StorageEndpoint  string `env:"STORAGE_ENDPOINT"`
	StorageRegion    string `env:"STORAGE_REGION"    envDefault:"auto"`
	StorageBucket    string `env:"STORAGE_BUCKET"    envDefault:"toma-images"`
	StorageAccessKey string `env:"STORAGE_ACCESS_KEY"`
	StorageSecretKey string `env:"STORAGE_SECRET_KEY"`
	StorageUseSSL    bool   `env:"STORAGE_USE_SSL"   envDefault:"true"`
	// StoragePublicBaseURL is the public URL prefix for uploaded objects
	// (CDN or bucket website endpoint). Defaults to the endpoint itself.
	StoragePublicBaseURL string `env:"STORAGE_PUBLIC_BASE_URL"`

	// Bootstrap admin account, created on first startup when no users exist.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// DevAdminFallback accepts the static development bearer token as an
	// admin identity. It is refused outside the development environment;
	// see [Config.DevFallbackActive].
	DevAdminFallback bool `env:"DEV_ADMIN_FALLBACK" envDefault:"false"`

	// SeedDemoContent inserts the original bilingual demo articles,
	// routines, and remedies alongside the static sections and tips.
	SeedDemoContent bool `env:"SEED_DEMO_CONTENT" envDefault:"false"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the extra CORS origins configured via
// EXTRA_ORIGINS (comma-separated, exact match).
func (c *Config) AllowedOrigins() []string {
	if c.ExtraOrigins == "" {
		return nil
	}
	origins := []string{}
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// DevFallbackActive reports whether the static admin token may be honored.
//
// The flag alone is not enough: a production deploy that leaks
// DEV_ADMIN_FALLBACK=true into its environment must still refuse the
// fallback, so the environment check is part of the gate itself.
func (c *Config) DevFallbackActive() bool {
	return c.DevAdminFallback && c.IsDevelopment()
}
