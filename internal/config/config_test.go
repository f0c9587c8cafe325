package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origURL := os.Getenv("MONGO_URL")
	defer os.Setenv("MONGO_URL", origURL)

	os.Setenv("MONGO_URL", "mongodb://test-host:27017")
	os.Setenv("MONGO_CONNECT_TIMEOUT_SEC", "20")
	os.Setenv("MINIO_USE_SSL", "true")
	defer os.Unsetenv("MONGO_CONNECT_TIMEOUT_SEC")
	defer os.Unsetenv("MINIO_USE_SSL")

	cfg := Load()

	assert.Equal(t, "mongodb://test-host:27017", cfg.Mongo.URL)
	assert.Equal(t, 20, cfg.Mongo.ConnectTimeoutSec)
	assert.True(t, cfg.MinIO.UseSSL)
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("DB_NAME")
	os.Unsetenv("RESUME_FILENAME")

	cfg := Load()

	assert.Equal(t, "portfolio", cfg.Mongo.Database)
	assert.Equal(t, "Keerthana_Madisetty_Resume.pdf", cfg.Resume.Filename)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
