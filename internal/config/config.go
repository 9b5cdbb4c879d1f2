// Package config loads runtime settings from a .env file and the
// environment. Command-line flags use these values as defaults, so flags
// always win over the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the tracker's runtime settings.
type Config struct {
	DBPath  string
	Addr    string
	Email   string
	LogPath string
}

// Load reads .env (if present) and the environment, falling back to the
// built-in defaults.
func Load() *Config {
	// Missing .env is fine, the environment still applies.
	_ = godotenv.Load()

	return &Config{
		DBPath:  getEnvOrDefault("VINTED_DB", "vintedtracker.sqlite3"),
		Addr:    getEnvOrDefault("VINTED_ADDR", ":8080"),
		Email:   getEnvOrDefault("VINTED_EMAIL", "seller@localhost"),
		LogPath: os.Getenv("VINTED_LOG"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
