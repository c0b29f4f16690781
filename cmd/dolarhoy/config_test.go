package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "DATABASE_URL", "REQUEST_LOG_RETENTION_CRON", "REQUEST_LOG_RETENTION_DAYS", "LOCATION"} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, _, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "0 3 * * *", cfg.RetentionCron)
	assert.Equal(t, 30, cfg.RetentionDays)
	assert.Equal(t, "America/Argentina/Buenos_Aires", cfg.Location)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/dolar")
	t.Setenv("REQUEST_LOG_RETENTION_DAYS", "7")

	cfg, _, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "postgres://u:p@localhost:5432/dolar", cfg.DatabaseURL)
	assert.Equal(t, 7, cfg.RetentionDays)
}

func TestLoadConfig_BadRetention(t *testing.T) {
	for _, v := range []string{"abc", "0", "-1"} {
		clearEnv(t)
		t.Setenv("REQUEST_LOG_RETENTION_DAYS", v)

		_, _, err := LoadConfig()
		assert.Error(t, err, v)
	}
}
