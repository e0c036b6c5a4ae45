package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, 8087, cfg.Server.Port)
	assert.Equal(t, "https://query1.finance.yahoo.com", cfg.Quote.BaseURL)
	assert.InDelta(t, 0.45, cfg.Resolver.AcceptThreshold, 1e-9)
	assert.InDelta(t, 0.75, cfg.Resolver.HighConfidence, 1e-9)
	assert.InDelta(t, 0.05, cfg.Resolver.TieEpsilon, 1e-9)
	assert.Equal(t, 5, cfg.Resolver.MaxCandidates)
	assert.True(t, cfg.Resolver.PreferDomestic)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/bazaar.toml")
	require.NoError(t, err)
	assert.Equal(t, 8087, cfg.Server.Port)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bazaar.toml")
	content := `environment = "production"

[server]
port = 9000

[auth]
token = "file-token"

[resolver]
accept_threshold = 0.6
max_candidates = 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "file-token", cfg.Auth.Token)
	assert.InDelta(t, 0.6, cfg.Resolver.AcceptThreshold, 1e-9)
	assert.Equal(t, 3, cfg.Resolver.MaxCandidates)
	// Unset sections keep defaults
	assert.Equal(t, "https://query1.finance.yahoo.com", cfg.Quote.BaseURL)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfigLaterFileOverrides(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	local := filepath.Join(dir, "local.toml")
	require.NoError(t, os.WriteFile(base, []byte("[server]\nport = 9000\n"), 0o644))
	require.NoError(t, os.WriteFile(local, []byte("[server]\nport = 9100\n"), 0o644))

	cfg, err := LoadConfig(base, local)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BAZAAR_PORT", "7777")
	t.Setenv("BAZAAR_AUTH_TOKEN", "env-token")
	t.Setenv("BAZAAR_VALIDATE_ID", "911234567890")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, "env-token", cfg.Auth.Token)
	assert.Equal(t, "911234567890", cfg.Auth.ValidateID)
}

func TestEnvFallbackNames(t *testing.T) {
	t.Setenv("BAZAAR_AUTH_TOKEN", "")
	t.Setenv("AUTH_TOKEN", "fallback-token")
	t.Setenv("BAZAAR_VALIDATE_ID", "")
	t.Setenv("MY_NUMBER", "919999999999")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "fallback-token", cfg.Auth.Token)
	assert.Equal(t, "919999999999", cfg.Auth.ValidateID)
}

func TestBazaarPortWinsOverPlatformPort(t *testing.T) {
	t.Setenv("PORT", "6000")
	t.Setenv("BAZAAR_PORT", "6001")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 6001, cfg.Server.Port)
}

func TestClampResolverConfig(t *testing.T) {
	rc := ResolverConfig{
		AcceptThreshold: 1.5,  // out of range
		HighConfidence:  0.3,  // below accept after reset
		TieEpsilon:      -0.1, // negative
		MaxCandidates:   0,
	}
	clampResolverConfig(&rc)

	assert.InDelta(t, 0.45, rc.AcceptThreshold, 1e-9)
	assert.GreaterOrEqual(t, rc.HighConfidence, rc.AcceptThreshold)
	assert.InDelta(t, 0.05, rc.TieEpsilon, 1e-9)
	assert.Equal(t, 5, rc.MaxCandidates)
}

func TestQuoteTimeoutParsing(t *testing.T) {
	qc := QuoteConfig{Timeout: "5s"}
	assert.Equal(t, "5s", qc.GetTimeout().String())

	bad := QuoteConfig{Timeout: "bogus"}
	assert.Equal(t, "30s", bad.GetTimeout().String())
}
