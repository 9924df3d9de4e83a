// Package config loads environment-sourced defaults for the search CLI,
// read before flags are parsed so flags can override them (§4.9).
//
// Grounded on the teacher's internal/config.LoadConfig (env-var-driven
// defaults, overridable fields, sensible zero-values), rebuilt around the
// search CLI's own settings instead of encryption/retention knobs.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds environment-sourced defaults for a search invocation.
type Config struct {
	NoGit        bool
	OutputFormat string
	LogLevel     string
	HistoryDB    string
	HistoryLimit int
}

// Load reads a .env file if present (best-effort, ignored if absent) and
// returns defaults sourced from the environment, falling back to hardcoded
// values matching the CLI's own flag defaults.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		NoGit:        envBool("SEMQ_NO_GIT", false),
		OutputFormat: envOr("SEMQ_OUTPUT_FORMAT", "grep"),
		LogLevel:     envOr("SEMQ_LOG_LEVEL", "warning"),
		HistoryDB:    envOr("SEMQ_HISTORY_DB", ".semq/history.db"),
		HistoryLimit: envInt("SEMQ_HISTORY_LIMIT", 20),
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
