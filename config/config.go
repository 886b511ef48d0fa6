package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds the application configuration.
type Config struct {
	AuthURL     string        `validate:"required,url"` // Auth module base URL
	Port        string        `validate:"required"`     // Service port
	APIBasePath string        `validate:"required,startswith=/"`
	AuthTimeout time.Duration `validate:"gt=0"` // Per-call timeout for auth module requests
}

// Load reads configuration from environment variables. AUTH_URL is the one
// required setting: the service refuses to boot without it, so a missing
// auth module address is a startup failure rather than a per-request one.
func Load() (*Config, error) {
	config := &Config{
		AuthURL:     getEnv("AUTH_URL", ""),
		Port:        getEnv("PORT", "8890"),
		APIBasePath: getEnv("API_BASE_PATH", "/api"),
		AuthTimeout: 10 * time.Second,
	}

	if timeoutStr := os.Getenv("AUTH_TIMEOUT"); timeoutStr != "" {
		duration, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid AUTH_TIMEOUT format: %w", err)
		}
		config.AuthTimeout = duration
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.AuthURL == "" {
		return fmt.Errorf("AUTH_URL is required")
	}

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// getEnv retrieves an environment variable or returns a fallback value.
// A KEY_FILE variant pointing at a file takes precedence, for secrets
// mounted by the orchestrator.
func getEnv(key, fallback string) string {
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
