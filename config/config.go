// Package config loads the application configuration from environment
// variables, with a .env file honored in development.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Google GoogleConfig
	Parse  ParseConfig
}

type ServerConfig struct {
	Addr          string
	SessionSecret string
}

// GoogleConfig carries the OAuth client registration.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type ParseConfig struct {
	// Timezone is the IANA zone shift times are interpreted in.
	Timezone string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is merged in first when present.
func Load() (*Config, error) {
	// Ignore the error: a missing .env is the normal production case.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Addr:          getEnv("LISTEN_ADDR", ":8080"),
			SessionSecret: getEnv("SESSION_SECRET", ""),
		},
		Google: GoogleConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/oauth2callback"),
		},
		Parse: ParseConfig{
			Timezone: getEnv("SHIFT_TIMEZONE", "Europe/Madrid"),
		},
	}

	if cfg.Server.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is required")
	}
	if cfg.Google.ClientID == "" {
		return nil, errors.New("GOOGLE_CLIENT_ID is required")
	}
	if cfg.Google.ClientSecret == "" {
		return nil, errors.New("GOOGLE_CLIENT_SECRET is required")
	}
	if _, err := time.LoadLocation(cfg.Parse.Timezone); err != nil {
		return nil, errors.New("SHIFT_TIMEZONE is not a valid IANA zone name")
	}

	return cfg, nil
}

// Location resolves the configured timezone. Load has already validated it.
func (c *ParseConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
