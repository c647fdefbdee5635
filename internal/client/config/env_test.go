package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("FOLIO_REQUEST_TIMEOUT", "45s")
	t.Setenv("FOLIO_RPS", "2.5")
	t.Setenv("FOLIO_LOG_FORMAT", "slog")

	var cfg Config
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2.5, cfg.RequestsPerSecond)
	assert.Equal(t, "slog", cfg.LogFormat)
	assert.Equal(t, "http://localhost/api", cfg.APIBaseURL, "unset variables keep the current value")
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("FOLIO_RPS_BURST", "many")

	var cfg Config
	err := parseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
