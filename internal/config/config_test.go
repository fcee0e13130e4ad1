package config_test

import (
	"os"
	"path/filepath"
	"phishsniper/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
http:
  addr: ":9090"
intel:
  provider: rdap
  lookupTimeout: 2s
policy:
  suspiciousTLDs: [zip, mov]
  weights:
    ip_address: 40
  highThreshold: 80
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, config.ProviderRDAP, cfg.Intel.Provider)
	require.Equal(t, 2*time.Second, cfg.Intel.LookupTimeout)
	require.Equal(t, []string{"zip", "mov"}, cfg.Policy.SuspiciousTLDs)
	require.Equal(t, map[string]float64{"ip_address": 40}, cfg.Policy.Weights)
	require.InDelta(t, 80, cfg.Policy.HighThreshold, 0)

	// defaults are kept for unset values
	require.InDelta(t, 30, cfg.Policy.MediumThreshold, 0)
	require.Equal(t, time.Hour, cfg.Intel.CacheTTL)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.False(t, cfg.Database.Enabled)
}

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("INTEL_PROVIDER", "none")
	t.Setenv("POLICY_SHORTENERS", "bit.ly,t.co")
	t.Setenv("DATABASE_ENABLED", "true")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	require.Equal(t, config.ProviderNone, cfg.Intel.Provider)
	require.Equal(t, []string{"bit.ly", "t.co"}, cfg.Policy.Shorteners)
	require.True(t, cfg.Database.Enabled)
	require.Equal(t, "development", cfg.Environment)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("http: [not a map"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}
