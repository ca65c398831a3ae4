package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_FromEnvironment(t *testing.T) {
	os.Setenv("API_BASE_URL", "http://api.test:8000")
	os.Setenv("API_TIMEOUT_SECONDS", "5")
	defer func() {
		os.Unsetenv("API_BASE_URL")
		os.Unsetenv("API_TIMEOUT_SECONDS")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "http://api.test:8000", cfg.APIBaseURL)
	assert.Equal(t, 5, cfg.APITimeoutSeconds)
}

func TestLoad_Defaults(t *testing.T) {
	os.Setenv("API_BASE_URL", "http://api.test:8000")
	os.Unsetenv("API_TIMEOUT_SECONDS")
	os.Unsetenv("ENV")
	os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("API_BASE_URL")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, 10, cfg.APITimeoutSeconds)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.IsDev())
}

func TestLoad_RequiresBaseURL(t *testing.T) {
	os.Unsetenv("API_BASE_URL")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API_BASE_URL")
}
