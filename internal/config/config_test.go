package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":9090"
cache:
  backend: redis
  ttl: 10m
  redis:
    addr: "redis:6379"
news:
  source_timeout: 5s
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "redis:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, 5*time.Second, cfg.News.SourceTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)

	// Unset fields fall back to defaults.
	assert.Equal(t, 20, cfg.News.MaxPerSource)
	assert.Equal(t, 30, cfg.News.MaxItems)
	assert.Equal(t, "goldshop:news", cfg.Cache.Redis.Key)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_REDIS_ADDR", "envhost:6379")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
cache:
  redis:
    addr: "${TEST_REDIS_ADDR}"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "envhost:6379", cfg.Cache.Redis.Addr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "file", cfg.Cache.Backend)
	assert.Equal(t, "news-cache.json", cfg.Cache.Path)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 10*time.Second, cfg.News.SourceTimeout)
	assert.Equal(t, 15, cfg.News.MinItems)
	assert.Equal(t, 5, cfg.News.MinFallback)
	assert.False(t, cfg.News.Refresh.Enabled)
	assert.Equal(t, 25*time.Minute, cfg.News.Refresh.Interval)
	assert.Equal(t, 12*time.Hour, cfg.Cart.SessionTTL)
	assert.Equal(t, "info", cfg.LogLevel)
}
