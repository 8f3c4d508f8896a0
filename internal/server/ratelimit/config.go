package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule is a rate limit for one route family. Path supports prefix
// matching when it ends with "/".
type Rule struct {
	Path   string
	Method string
	Limit  int           // requests per window
	Window time.Duration // refill window
	Burst  int           // burst capacity, defaults to Limit
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Rules           []Rule
}

// LoadConfig loads rate limiting configuration from environment
// variables, falling back to defaults tuned for this API.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 300),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Rules:           DefaultRules(),
	}
}

// DefaultRules returns the built-in per-route limits. Generation routes
// hit the model provider and are kept tight; auth routes are limited to
// slow down credential stuffing.
func DefaultRules() []Rule {
	return []Rule{
		{Path: "/api/generate-roadmap", Method: "POST", Limit: 10, Window: time.Hour, Burst: 3},
		{Path: "/api/analyze-resume", Method: "POST", Limit: 10, Window: time.Hour, Burst: 3},
		{Path: "/api/auth/", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
	}
}

// match finds the rule for a path and method. Health checks are never
// limited; unmatched routes use the default limit.
func (c *Config) match(path, method string) *Rule {
	if path == "/health" {
		return nil
	}

	for i := range c.Rules {
		rule := &c.Rules[i]
		if rule.Method != method {
			continue
		}
		if rule.Path == path {
			return rule
		}
		if strings.HasSuffix(rule.Path, "/") && strings.HasPrefix(path, rule.Path) {
			return rule
		}
	}

	return &Rule{
		Path:   "(default)",
		Limit:  c.DefaultLimit,
		Window: c.DefaultWindow,
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
