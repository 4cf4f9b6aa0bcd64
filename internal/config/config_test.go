package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "")
	t.Setenv("QUALITY_THRESHOLD", "")
	t.Setenv("MAX_REFINE_ITERATIONS", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("DEBUG", "")
	t.Setenv("LOG_JSON", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 60.0, cfg.QualityThreshold)
	assert.Equal(t, 3, cfg.MaxRefineIterations)
	assert.Equal(t, 2*time.Minute, cfg.RequestTimeout)
	assert.False(t, cfg.Debug)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "9090")
	t.Setenv("QUALITY_THRESHOLD", "75.5")
	t.Setenv("MAX_REFINE_ITERATIONS", "5")
	t.Setenv("REQUEST_TIMEOUT", "90s")
	t.Setenv("DEBUG", "true")
	t.Setenv("LOG_JSON", "1")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 75.5, cfg.QualityThreshold)
	assert.Equal(t, 5, cfg.MaxRefineIterations)
	assert.Equal(t, 90*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.LogJSON)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()

	assert.ErrorContains(t, err, "GEMINI_API_KEY")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{name: "bad port", env: "PORT", value: "not-a-port"},
		{name: "bad threshold", env: "QUALITY_THRESHOLD", value: "high"},
		{name: "bad iterations", env: "MAX_REFINE_ITERATIONS", value: "many"},
		{name: "bad timeout", env: "REQUEST_TIMEOUT", value: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GEMINI_API_KEY", "test-key")
			t.Setenv(tt.env, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			GeminiAPIKey:        "key",
			Port:                8080,
			QualityThreshold:    60,
			MaxRefineIterations: 3,
			RequestTimeout:      time.Minute,
		}
	}

	assert.NoError(t, base().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "port too high", mutate: func(c *Config) { c.Port = 70000 }},
		{name: "port zero", mutate: func(c *Config) { c.Port = 0 }},
		{name: "threshold over 100", mutate: func(c *Config) { c.QualityThreshold = 101 }},
		{name: "threshold negative", mutate: func(c *Config) { c.QualityThreshold = -1 }},
		{name: "zero iterations", mutate: func(c *Config) { c.MaxRefineIterations = 0 }},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
