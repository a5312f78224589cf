package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geo-directory-service/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, ":5000", cfg.GetServerAddr())
	assert.Equal(t, 10, cfg.RateLimit.Max)
	assert.Equal(t, 60*time.Second, cfg.RateLimit.Window)
	assert.True(t, cfg.Seed.OnStartup)
	assert.Equal(t, "states.JSON", cfg.Seed.StatesFile)
	assert.Equal(t, "cities.JSON", cfg.Seed.CitiesFile)
	assert.Equal(t, 1000, cfg.Database.InsertBatchSize)
	assert.False(t, cfg.RedisEnabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8081")
	t.Setenv("RATE_LIMIT_MAX", "25")
	t.Setenv("RATE_LIMIT_WINDOW_MS", "1500")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("SEED_ON_STARTUP", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 25, cfg.RateLimit.Max)
	assert.Equal(t, 1500*time.Millisecond, cfg.RateLimit.Window)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, "redis:6379", cfg.Redis.GetAddr())
	assert.False(t, cfg.Seed.OnStartup)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "70000")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestConnectionStrings(t *testing.T) {
	db := config.DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "geo",
		Password: "secret",
		DBName:   "directory",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5433 user=geo password=secret dbname=directory sslmode=disable", db.GetDSN())

	redis := config.RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", redis.GetAddr())
}

func TestLoad_BatchSizeBound(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("SEED_BATCH_SIZE", "5957")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.MaxInsertBatchSize, cfg.Database.InsertBatchSize)

	t.Setenv("SEED_BATCH_SIZE", "6000")
	_, err = config.Load()
	assert.ErrorContains(t, err, "SEED_BATCH_SIZE")
}
