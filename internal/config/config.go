package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/time/rate"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port            string        `env:"PORT" envDefault:"8080"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"./static"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Storage
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	DatabasePath  string `env:"DATABASE_PATH" envDefault:"data/tracker.db"`

	// Sessions
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`

	// Localization
	DefaultLocale    string   `env:"DEFAULT_LOCALE" envDefault:"en"`
	SupportedLocales []string `env:"SUPPORTED_LOCALES" envSeparator:"," envDefault:"en,es,de"`

	// Rate Limiting (tracker mutations, per client IP)
	RateLimitMutations float64 `env:"RATE_LIMIT_MUTATIONS" envDefault:"10"`
	RateLimitBurst     int     `env:"RATE_LIMIT_BURST" envDefault:"20"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"` // Options: debug, info, silent
}

// Load parses configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	var cfg Config
	// Defaults come from struct tags; an empty environment cannot fail.
	_ = env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}})
	cfg.normalize()
	return &cfg
}

func (c *Config) normalize() {
	c.StorageDriver = strings.ToLower(strings.TrimSpace(c.StorageDriver))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.DefaultLocale = strings.TrimSpace(c.DefaultLocale)
	c.SupportedLocales = parseList(c.SupportedLocales)
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT is required")
	}
	switch c.StorageDriver {
	case DriverSQLite:
		if strings.TrimSpace(c.DatabasePath) == "" {
			return fmt.Errorf("DATABASE_PATH is required for the sqlite driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if len(c.SupportedLocales) == 0 {
		return fmt.Errorf("SUPPORTED_LOCALES must list at least one locale")
	}
	if !slices.Contains(c.SupportedLocales, c.DefaultLocale) {
		return fmt.Errorf("DEFAULT_LOCALE %q is not in SUPPORTED_LOCALES", c.DefaultLocale)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.RateLimitMutations <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limits must be positive")
	}
	return nil
}

// MutationLimit returns the configured mutation rate.
func (c *Config) MutationLimit() rate.Limit {
	return rate.Limit(c.RateLimitMutations)
}

// Silent reports whether logging is switched off.
func (c *Config) Silent() bool {
	return c.LogLevel == "silent" || c.LogLevel == "off"
}

// Debug reports whether per-request logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

// parseList trims entries and drops empty ones
func parseList(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}
