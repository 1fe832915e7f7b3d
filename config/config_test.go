package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aatuh/ulid-toolkit/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.MustLoadFromEnv()
	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 1000, cfg.MaxCount)
	assert.Equal(t, int64(5000), cfg.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.Origins())
}

func TestOverrides(t *testing.T) {
	t.Setenv("ULIDD_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ULIDD_MAX_COUNT", "50")
	t.Setenv("ULIDD_CORS_ORIGINS", "https://a.example, https://b.example")

	cfg := config.MustLoadFromEnv()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 50, cfg.MaxCount)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins())
}

func TestInvalidValuesPanic(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	assert.Panics(t, func() { config.MustLoadFromEnv() })
}

func TestOutOfRangeTimeoutPanics(t *testing.T) {
	t.Setenv("ULIDD_REQUEST_TIMEOUT_MS", "1")
	assert.Panics(t, func() { config.MustLoadFromEnv() })
}
