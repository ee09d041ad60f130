package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "LOG_LEVEL", "DEFAULT_LOCATION", "OWM_CURRENT_URL", "OWM_ONECALL_URL", "UPSTREAM_TIMEOUT", "OTEL_EXPORTER_OTLP_ENDPOINT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultLocation, cfg.DefaultLocation)
	assert.Equal(t, "https://api.openweathermap.org/data/2.5/weather", cfg.CurrentWeatherURL)
	assert.Equal(t, "https://api.openweathermap.org/data/3.0/onecall", cfg.OneCallURL)
	assert.Equal(t, 8*time.Second, cfg.UpstreamTimeout)
	assert.Empty(t, cfg.OTLPEndpoint)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_LOCATION", "Portland,OR,US")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "Portland,OR,US", cfg.DefaultLocation)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
}

func TestFromEnvRejectsBadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("UPSTREAM_TIMEOUT", "soon")

	_, err := FromEnv()
	require.Error(t, err)

	var cerr *Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, ErrParsing, cerr.Kind)
}

func TestFromEnvRejectsInvalidURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("OWM_CURRENT_URL", "not a url")

	_, err := FromEnv()
	require.Error(t, err)

	var cerr *Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, ErrValidation, cerr.Kind)
}

func TestAPIKeyReadsEnvironmentEachCall(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	assert.Empty(t, APIKey())

	t.Setenv(APIKeyEnv, "  k1 ")
	assert.Equal(t, "k1", APIKey())

	t.Setenv(APIKeyEnv, "k2")
	assert.Equal(t, "k2", APIKey())
}
