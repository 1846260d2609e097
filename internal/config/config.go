// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultBaseURL        = "http://localhost:8080/api/v1"
	DefaultTimeoutSeconds = 30
	defaultTokenFileName  = ".onboard_tokens.json"
)

// ClientConfig holds everything the CLI needs to reach the onboarding API.
type ClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	TokenFile string
	AuthToken string
	Verbose   bool
}

// NewClientConfig builds configuration from environment variables:
// ONBOARD_API_URL, ONBOARD_HTTP_TIMEOUT_SECONDS, ONBOARD_TOKEN_FILE, and
// ONBOARD_AUTH_TOKEN. Missing values use defaults; the token file defaults to
// a dotfile in the user's home directory.
func NewClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{
		BaseURL:   os.Getenv("ONBOARD_API_URL"),
		TokenFile: os.Getenv("ONBOARD_TOKEN_FILE"),
		AuthToken: os.Getenv("ONBOARD_AUTH_TOKEN"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	timeoutStr := os.Getenv("ONBOARD_HTTP_TIMEOUT_SECONDS")
	if timeoutStr == "" {
		timeoutStr = strconv.Itoa(DefaultTimeoutSeconds)
	}
	seconds, err := strconv.Atoi(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid ONBOARD_HTTP_TIMEOUT_SECONDS: %v", err)
	}
	cfg.Timeout = time.Duration(seconds) * time.Second

	if cfg.TokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.TokenFile = filepath.Join(home, defaultTokenFileName)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *ClientConfig) normalize() error {
	if c.BaseURL == "" {
		return fmt.Errorf("API base URL cannot be empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("HTTP timeout must be non-negative, got: %s", c.Timeout)
	}
	return nil
}
