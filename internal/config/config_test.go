package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "MAX_WORKERS", "JWT_SECRET", "POSTGRES_DB_URL", "REDIS_ADDR", "PRINT_SETTLE_DELAY_MS", "DRAFT_TTL_HOURS", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 5, cfg.MaxWorkers)
	assert.Equal(t, 250*time.Millisecond, cfg.PrintSettleDelay)
	assert.Equal(t, 24*time.Hour, cfg.DraftTTL)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_WORKERS", "0")
	t.Setenv("PRINT_SETTLE_DELAY_MS", "400")
	t.Setenv("LOG_BODIES", "yes")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 1, cfg.MaxWorkers)
	assert.Equal(t, 400*time.Millisecond, cfg.PrintSettleDelay)
	assert.True(t, cfg.LogBodies)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 0, cfg.RedisDB)
}
