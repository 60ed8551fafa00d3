// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Auth    AuthConfig

	// Seed controls whether the default seed data is applied at startup.
	Seed bool
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// StorageConfig holds persistence configuration.
type StorageConfig struct {
	// DBPath is the SQLite database file path.
	DBPath string
}

// AuthConfig holds token and authorization configuration.
type AuthConfig struct {
	// JWTSecret signs access tokens. The default matches the upstream
	// development secret and must be overridden in production.
	JWTSecret string

	// TokenTTL is the fixed lifetime of issued tokens.
	TokenTTL time.Duration

	// AdminSubscriber is the subscriber number recognized as the
	// administrative account.
	AdminSubscriber string
}

// Load reads configuration from environment variables, falling back to
// defaults suitable for local development.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Addr:            getEnv("BILLING_ADDR", ":8080"),
			ReadTimeout:     getEnvDuration("BILLING_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvDuration("BILLING_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:     getEnvDuration("BILLING_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvDuration("BILLING_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Storage: StorageConfig{
			DBPath: getEnv("BILLING_DB_PATH", "./data/bills.db"),
		},
		Auth: AuthConfig{
			JWTSecret:       getEnv("BILLING_JWT_SECRET", "super-secret"),
			TokenTTL:        getEnvDuration("BILLING_TOKEN_TTL", 24*time.Hour),
			AdminSubscriber: getEnv("BILLING_ADMIN_SUBSCRIBER", "admin"),
		},
		Seed: getEnvBool("BILLING_SEED", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("BILLING_JWT_SECRET must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("BILLING_TOKEN_TTL must be positive")
	}
	if c.Auth.AdminSubscriber == "" {
		return fmt.Errorf("BILLING_ADMIN_SUBSCRIBER must not be empty")
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("BILLING_DB_PATH must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
