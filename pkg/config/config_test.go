package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, BackendFile, cfg.Store.Backend)
	assert.Equal(t, int64(5*1024*1024), cfg.Store.CapacityBytes)
	assert.Equal(t, 3, cfg.Store.SaveRetries)
	assert.Equal(t, 5*time.Second, cfg.Store.SaveRetryDelay)
	assert.Equal(t, 2*time.Minute, cfg.Reset.TTL)
	assert.True(t, cfg.Reports.Enabled)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORE_BACKEND", " Redis ")
	t.Setenv("RESET_TOKEN_TTL", "not-a-duration")
	t.Setenv("STORE_SAVE_RETRY_DELAY", "250ms")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, ,http://school.test")
	t.Setenv("ENABLE_REPORTS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, 2*time.Minute, cfg.Reset.TTL)
	assert.Equal(t, 250*time.Millisecond, cfg.Store.SaveRetryDelay)
	assert.Equal(t, []string{"http://localhost:3000", "http://school.test"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Reports.Enabled)
}
