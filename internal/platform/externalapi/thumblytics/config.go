// Package thumblytics provides a client for the external thumbnail analysis API.
package thumblytics

import (
	"os"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the local development address of the analysis API.
	DefaultBaseURL = "http://localhost:8000"
	// DefaultTimeout bounds a single analysis round trip. The analysis pipeline
	// (detection, OCR, LLM feedback) routinely takes tens of seconds.
	DefaultTimeout = 60 * time.Second
)

// Config holds configuration for the analysis API client.
type Config struct {
	BaseURL string        // Base URL for the API (e.g., "http://localhost:8000")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads analysis API configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		BaseURL: os.Getenv("ANALYSIS_API_BASE_URL"),
		Timeout: DefaultTimeout,
	}
	if v := strings.TrimSpace(os.Getenv("ANALYSIS_TIMEOUT")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg.withDefaults()
}

// withDefaults fills empty fields and normalizes the base URL.
func (c Config) withDefaults() Config {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
