package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		original := os.Getenv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if original != "" {
				os.Setenv(key, original)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "DATABASE_URL", "PORT", "GO_ENV", "LOG_LEVEL")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port, "PORT should default to the original server port")
	assert.Equal(t, "development", cfg.GoEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.DatabaseURL, "DATABASE_URL should fall back to the local default")
}

func TestLoadFromEnvironment(t *testing.T) {
	unsetEnv(t, "DATABASE_URL", "PORT", "GO_ENV")
	os.Setenv("DATABASE_URL", "postgresql://oficina:oficina@db:5432/oficina")
	os.Setenv("PORT", "8081")
	t.Cleanup(func() {
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("PORT")
	})

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "postgresql://oficina:oficina@db:5432/oficina", cfg.DatabaseURL)
	assert.Equal(t, "8081", cfg.Port)
}

func TestValidate(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgresql://localhost/oficina", Port: "3000"}
	assert.NoError(t, cfg.Validate())

	cfg.DatabaseURL = ""
	assert.Error(t, cfg.Validate(), "Missing DATABASE_URL should fail validation")

	cfg = &Config{DatabaseURL: "postgresql://localhost/oficina"}
	assert.Error(t, cfg.Validate(), "Missing PORT should fail validation")
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := &Config{GoEnv: "production"}
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsTest())

	cfg.GoEnv = "test"
	assert.True(t, cfg.IsTest())
	assert.False(t, cfg.IsProduction())
}
