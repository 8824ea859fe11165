// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

The storage backend decides where the account directory and the session
scalar live. The default "file" backend mirrors the browser's local storage
with a single JSON document on disk.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// # Storage Backends

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMongo    = "mongo"
)

// # Credential Schemes

const (
	// SchemePlain stores and compares passwords verbatim.
	SchemePlain = "plain"
	// SchemeBcrypt stores bcrypt hashes. Existing plaintext records stop matching.
	SchemeBcrypt = "bcrypt"
)

// # Configuration Schema

// Config holds all runtime configuration for scrollfeed.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Key-value storage
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"file"`
	StoragePath    string `env:"STORAGE_PATH"    envDefault:"./data/scrollfeed.json"`
	SQLitePath     string `env:"SQLITE_PATH"     envDefault:"./data/scrollfeed.db"`

	// Relational Database (PostgreSQL), only for STORAGE_BACKEND=postgres
	DatabaseURL string `env:"DATABASE_URL"`

	// Key-Value Cache (Redis), only for STORAGE_BACKEND=redis
	RedisURL       string `env:"REDIS_URL"`
	RedisKeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"scrollfeed:"`

	// Document store (MongoDB), only for STORAGE_BACKEND=mongo
	MongoURL        string `env:"MONGO_URL"`
	MongoDatabase   string `env:"MONGO_DATABASE"   envDefault:"scrollfeed"`
	MongoCollection string `env:"MONGO_COLLECTION" envDefault:"kv_entry"`

	// CredentialScheme selects how passwords are stored.
	CredentialScheme string `env:"CREDENTIAL_SCHEME" envDefault:"plain"`

	// Cross-Origin Resource Sharing, comma separated origin suffixes
	ExtraOrigins []string `env:"EXTRA_ORIGINS" envSeparator:","`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct and validates it.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects unknown backends and schemes, and missing connection URLs.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory, BackendFile, BackendSQLite:
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("config: REDIS_URL is required for the %q backend", c.StorageBackend)
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL is required for the %q backend", c.StorageBackend)
		}
	case BackendMongo:
		if c.MongoURL == "" {
			return fmt.Errorf("config: MONGO_URL is required for the %q backend", c.StorageBackend)
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	switch c.CredentialScheme {
	case SchemePlain, SchemeBcrypt:
	default:
		return fmt.Errorf("config: unknown CREDENTIAL_SCHEME %q", c.CredentialScheme)
	}

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// AllowedOrigins returns the origin suffixes accepted outside development.
func (c *Config) AllowedOrigins() []string {
	return append([]string{"scrollfeed.app"}, c.ExtraOrigins...)
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
