package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"ENV", "LOG_LEVEL", "TELEGRAM_TOKEN", "ADMIN_IDS", "STORAGE_DRIVER", "DATA_DIR",
	"DB_DSN", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_PREFIX", "HTTP_ADDR",
	"HOUSEKEEPING_INTERVAL", "ADMIN_API_TOKEN",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Equal(t, "file", cfg.StorageDriver)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "admin_bot:", cfg.RedisPrefix)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, time.Hour, cfg.HousekeepingInterval)
	assert.Empty(t, cfg.AdminIDs)
}

func TestFromEnv_Values(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("ADMIN_IDS", "42, 1001,")
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("HOUSEKEEPING_INTERVAL", "15m")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.Equal(t, []int64{42, 1001}, cfg.AdminIDs)
	assert.Equal(t, "redis", cfg.StorageDriver)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 15*time.Minute, cfg.HousekeepingInterval)
	assert.True(t, cfg.IsAdmin(1001))
	assert.False(t, cfg.IsAdmin(7))
}

func TestFromEnv_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad admin id", map[string]string{"ADMIN_IDS": "42,abc"}},
		{"bad redis db", map[string]string{"REDIS_DB": "x"}},
		{"bad interval", map[string]string{"HOUSEKEEPING_INTERVAL": "soon"}},
		{"negative interval", map[string]string{"HOUSEKEEPING_INTERVAL": "-1m"}},
		{"postgres without dsn", map[string]string{"STORAGE_DRIVER": "postgres"}},
		{"redis without addr", map[string]string{"STORAGE_DRIVER": "redis"}},
		{"unknown driver", map[string]string{"STORAGE_DRIVER": "sqlite"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
