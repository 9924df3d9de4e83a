package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearConfigEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SEMQ_NO_GIT",
		"SEMQ_OUTPUT_FORMAT",
		"SEMQ_LOG_LEVEL",
		"SEMQ_HISTORY_DB",
		"SEMQ_HISTORY_LIMIT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaultsWhenEnvironmentEmpty(t *testing.T) {
	clearConfigEnvVars(t)
	cfg := Load()
	assert.False(t, cfg.NoGit)
	assert.Equal(t, "grep", cfg.OutputFormat)
	assert.Equal(t, "warning", cfg.LogLevel)
	assert.Equal(t, ".semq/history.db", cfg.HistoryDB)
	assert.Equal(t, 20, cfg.HistoryLimit)
}

func TestLoadReadsOverridesFromEnvironment(t *testing.T) {
	clearConfigEnvVars(t)
	t.Setenv("SEMQ_NO_GIT", "true")
	t.Setenv("SEMQ_OUTPUT_FORMAT", "json")
	t.Setenv("SEMQ_LOG_LEVEL", "debug")
	t.Setenv("SEMQ_HISTORY_LIMIT", "5")

	cfg := Load()
	assert.True(t, cfg.NoGit)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5, cfg.HistoryLimit)
}

func TestLoadIgnoresMalformedIntOverride(t *testing.T) {
	clearConfigEnvVars(t)
	t.Setenv("SEMQ_HISTORY_LIMIT", "not-a-number")
	cfg := Load()
	assert.Equal(t, 20, cfg.HistoryLimit)
}
