package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Offline())
	assert.Equal(t, 2*time.Second, cfg.Sync.Warmup)
	assert.Equal(t, 300*time.Millisecond, cfg.Sync.Debounce)
	assert.Equal(t, 3, cfg.Sync.NextBadges)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("FIKA_REMOTE_DSN", "postgres://fika@localhost/fika")
	t.Setenv("FIKA_LOG_MODE", "prod")
	t.Setenv("FIKA_REDIS_ADDR", "localhost:6379")
	t.Setenv("FIKA_SETTLE_DEBOUNCE", "500ms")
	t.Setenv("FIKA_NEXT_BADGES", "5")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.Offline())
	assert.Equal(t, "prod", cfg.LogMode)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "fika.badges", cfg.Redis.Channel)
	assert.Equal(t, 500*time.Millisecond, cfg.Sync.Debounce)
	assert.Equal(t, 5, cfg.Sync.NextBadges)
	require.NoError(t, cfg.Validate())
}

func TestConfigFromEnvRejectsBadDuration(t *testing.T) {
	t.Setenv("FIKA_RESYNC_INTERVAL", "soon")
	_, err := ConfigFromEnv()
	assert.ErrorContains(t, err, "FIKA_RESYNC_INTERVAL")
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown log mode", func(c *Config) { c.LogMode = "verbose" }},
		{"empty listen addr", func(c *Config) { c.HTTPAddr = "" }},
		{"zero debounce", func(c *Config) { c.Sync.Debounce = 0 }},
		{"redis without channel", func(c *Config) { c.Redis.Addr = "localhost:6379"; c.Redis.Channel = "" }},
		{"next badges out of range", func(c *Config) { c.Sync.NextBadges = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fika.env")
	require.NoError(t, os.WriteFile(path, []byte("FIKA_HTTP_ADDR=0.0.0.0:9000\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("FIKA_HTTP_ADDR") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.HTTPAddr)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
