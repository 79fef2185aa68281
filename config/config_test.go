package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadEnvDefaults(t *testing.T) {
	unsetEnv(t, "PORT", "UPLOAD_MAX_BYTES", "UPLOAD_URL_PREFIX", "KAFKA_BROKERS")
	cfg := LoadEnv()

	assert.Equal(t, "5000", cfg.Server.HTTPPort)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxBytes)
	assert.Equal(t, "/uploads-furniture", cfg.Upload.URLPrefix)
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("DB_MAX_IDLE_CONNS", "not-a-number")
	t.Setenv("LOGGER_DISABLE_CALLER", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")

	cfg := LoadEnv()

	assert.Equal(t, "8080", cfg.Server.HTTPPort)
	assert.Equal(t, 25, cfg.MySQL.MaxOpenConns)
	assert.Equal(t, 5, cfg.MySQL.MaxIdleConns)
	assert.True(t, cfg.Logger.DisableCaller)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}
