// Package config provides application configuration through environment variables
// and the settings document consulted by individual operations.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// SettingsFile is the path of the JSON or YAML document holding operation settings.
	SettingsFile string

	// MetricsEnabled indicates whether operation metrics are collected.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string

	// BatchConcurrency is the number of requests the batch command dispatches in parallel.
	BatchConcurrency int

	// MaxRequestBytes bounds the size of a single request read from stdin.
	MaxRequestBytes int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Operation settings
		SettingsFile: env.GetString("SETTINGS_FILE", "config.json"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "cryptokaro"),

		// Command limits
		BatchConcurrency: env.GetInt("BATCH_CONCURRENCY", 4),
		MaxRequestBytes:  env.GetInt("MAX_REQUEST_BYTES", 1<<20),
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
