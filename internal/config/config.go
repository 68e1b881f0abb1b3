// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Storage backends selectable via the STORAGE environment variable.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// Storage selects the persistence backend: "memory" (default) or
	// "postgres". The memory backend is self-contained and seeds default
	// registries and a starter rate table on boot.
	Storage string

	// DatabaseURL is the Postgres connection string.
	// Required only when Storage is "postgres".
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MockLatency scales the memory backend's simulated per-operation
	// latency. 0 (the default) disables it; 1 reproduces the delays of the
	// original mock store. Ignored by the postgres backend.
	MockLatency float64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error for unknown backends, missing required variables, or
// unparseable values.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Storage:     getEnv("STORAGE", StorageMemory),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	switch cfg.Storage {
	case StorageMemory:
	case StoragePostgres:
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("required environment variables not set: DATABASE_URL")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORAGE backend %q (want %s or %s)",
			cfg.Storage, StorageMemory, StoragePostgres)
	}

	if raw := os.Getenv("MOCK_LATENCY"); raw != "" {
		scale, err := strconv.ParseFloat(raw, 64)
		if err != nil || scale < 0 {
			return Config{}, fmt.Errorf("MOCK_LATENCY must be a non-negative number, got %q", raw)
		}
		cfg.MockLatency = scale
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
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
