package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// APIBaseURL is the single base URL for the practice REST API. Every
	// request goes through it; nothing else in the codebase names a host.
	APIBaseURL string `mapstructure:"API_BASE_URL"`

	// APITimeoutSeconds bounds each individual request. A request that runs
	// past it fails; it is never retried.
	APITimeoutSeconds int `mapstructure:"API_TIMEOUT_SECONDS"`

	// SessionFile overrides where the session cookie marker is kept.
	// Empty means the per-user default location.
	SessionFile string `mapstructure:"SESSION_FILE"`

	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

// Load loads configuration from the environment and an optional .env file
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("API_BASE_URL", "")
	v.SetDefault("API_TIMEOUT_SECONDS", 10)
	v.SetDefault("SESSION_FILE", "")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("API_BASE_URL")
	v.BindEnv("API_TIMEOUT_SECONDS")
	v.BindEnv("SESSION_FILE")
	v.BindEnv("ENV")
	v.BindEnv("LOG_LEVEL")

	// Try reading .env, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.APIBaseURL) == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}

	return cfg, nil
}

// APITimeout returns the per-request timeout as a duration
func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.APITimeoutSeconds) * time.Second
}

// IsDev returns true when running in development mode
func (c *Config) IsDev() bool {
	return c.Env == "development"
}
