// Package common provides shared utilities for Bazaar
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Bazaar
type Config struct {
	Environment string         `toml:"environment"`
	Server      ServerConfig   `toml:"server"`
	Auth        AuthConfig     `toml:"auth"`
	Quote       QuoteConfig    `toml:"quote"`
	Resolver    ResolverConfig `toml:"resolver"`
	Charts      ChartsConfig   `toml:"charts"`
	Logging     LoggingConfig  `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// AuthConfig holds bearer-token authentication configuration.
// Token gates every tool invocation; ValidateID is the identifier
// returned by the validate tool for client-side pairing.
type AuthConfig struct {
	Token      string `toml:"token"`
	ValidateID string `toml:"validate_id"`
}

// QuoteConfig holds quote API client configuration
type QuoteConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *QuoteConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// ResolverConfig holds symbol resolution thresholds. These are tunable
// policy values, not contracts: the defaults match observed behavior but
// deployments may adjust them.
type ResolverConfig struct {
	AcceptThreshold float64 `toml:"accept_threshold"` // minimum fuzzy score to keep a candidate
	HighConfidence  float64 `toml:"high_confidence"`  // top score at or above this marks the query resolved
	TieEpsilon      float64 `toml:"tie_epsilon"`      // score gap treated as a tie for market preference
	MaxCandidates   int     `toml:"max_candidates"`   // suggestion list bound
	PreferDomestic  bool    `toml:"prefer_domestic"`  // tie-break toward NSE/BSE listings
}

// ChartsConfig holds chart rendering configuration
type ChartsConfig struct {
	CacheDir string `toml:"cache_dir"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8087,
		},
		Quote: QuoteConfig{
			BaseURL:   "https://query1.finance.yahoo.com",
			RateLimit: 5,
			Timeout:   "30s",
		},
		Resolver: ResolverConfig{
			AcceptThreshold: 0.45,
			HighConfidence:  0.75,
			TieEpsilon:      0.05,
			MaxCandidates:   5,
			PreferDomestic:  true,
		},
		Charts: ChartsConfig{
			CacheDir: "data/charts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	clampResolverConfig(&config.Resolver)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("BAZAAR_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("BAZAAR_HOST"); host != "" {
		config.Server.Host = host
	}

	// PORT is honored for platform deployments (Railway, Render) that
	// inject it; BAZAAR_PORT wins when both are set.
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if port := os.Getenv("BAZAAR_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("BAZAAR_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if v := resolveEnv("BAZAAR_AUTH_TOKEN", "AUTH_TOKEN"); v != "" {
		config.Auth.Token = v
	}
	if v := resolveEnv("BAZAAR_VALIDATE_ID", "MY_NUMBER"); v != "" {
		config.Auth.ValidateID = v
	}

	if v := os.Getenv("BAZAAR_QUOTE_API_URL"); v != "" {
		config.Quote.BaseURL = v
	}
	if v := os.Getenv("BAZAAR_CHART_CACHE"); v != "" {
		config.Charts.CacheDir = v
	}
}

// resolveEnv returns the first non-empty value among the named variables.
func resolveEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// clampResolverConfig forces resolver thresholds back into valid ranges.
// A zero value (absent from config) falls back to the default.
func clampResolverConfig(rc *ResolverConfig) {
	def := NewDefaultConfig().Resolver

	if rc.AcceptThreshold <= 0 || rc.AcceptThreshold > 1 {
		rc.AcceptThreshold = def.AcceptThreshold
	}
	if rc.HighConfidence <= 0 || rc.HighConfidence > 1 {
		rc.HighConfidence = def.HighConfidence
	}
	if rc.HighConfidence < rc.AcceptThreshold {
		rc.HighConfidence = rc.AcceptThreshold
	}
	if rc.TieEpsilon < 0 || rc.TieEpsilon > 0.5 {
		rc.TieEpsilon = def.TieEpsilon
	}
	if rc.MaxCandidates <= 0 {
		rc.MaxCandidates = def.MaxCandidates
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
