// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"]. Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// HomeCurrency is the ISO code cost summaries convert into. Defaults to "MYR".
	HomeCurrency string

	// RatesURL is the exchange-rate endpoint prefix; the source currency code
	// is appended as a path segment.
	RatesURL string

	// RateCacheTTL is how long a fetched exchange rate is reused. Defaults to 30m.
	RateCacheTTL time.Duration

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// MigrateOnStart applies pending migrations before serving. Defaults to true.
	MigrateOnStart bool
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	return load(os.Getenv)
}

// LoadWithDotEnv is Load with fallbacks read from dotenv files. Variables
// already set in the environment win; missing files are ignored.
func LoadWithDotEnv(paths ...string) (Config, error) {
	file, err := godotenv.Read(paths...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: read dotenv: %w", err)
	}
	return load(func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return file[key]
	})
}

func load(getenv func(string) string) (Config, error) {
	env := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		Port:         env("PORT", "8080"),
		LogLevel:     env("LOG_LEVEL", "info"),
		CORSOrigins:  splitCSV(env("CORS_ORIGINS", "*")),
		HomeCurrency: strings.ToUpper(env("HOME_CURRENCY", "MYR")),
		RatesURL:     env("RATES_URL", "https://open.er-api.com/v6/latest"),
	}

	var missing, invalid []string

	cfg.DatabaseURL = getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	ttl, err := time.ParseDuration(env("RATE_CACHE_TTL", "30m"))
	if err != nil || ttl <= 0 {
		invalid = append(invalid, "RATE_CACHE_TTL")
	}
	cfg.RateCacheTTL = ttl

	maxBody, err := strconv.ParseInt(env("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}
	cfg.MaxBodyBytes = maxBody

	migrate, err := strconv.ParseBool(env("MIGRATE_ON_START", "true"))
	if err != nil {
		invalid = append(invalid, "MIGRATE_ON_START")
	}
	cfg.MigrateOnStart = migrate

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
