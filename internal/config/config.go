// Package config provides configuration loading and validation for the
// API server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// AppConfig holds the environment-driven settings for the server binary.
type AppConfig struct {
	Port        int
	DatabaseURL string
	GeminiKey   string
}

// NewAppConfig reads configuration from environment variables.
// DATABASE_URL and GEMINI_API_KEY are required; PORT defaults to 8080.
func NewAppConfig() (*AppConfig, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		port = p
	}

	cfg := &AppConfig{
		Port:        port,
		DatabaseURL: databaseURL,
		GeminiKey:   geminiKey,
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *AppConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	return nil
}
