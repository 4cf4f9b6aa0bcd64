// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the serve and CLI commands need.
type Config struct {
	// GeminiAPIKey authenticates model calls. Required.
	GeminiAPIKey string

	// Port is the HTTP listen port.
	Port int

	// QualityThreshold is the coverage score below which a parsed resume
	// enters refinement.
	QualityThreshold float64

	// MaxRefineIterations bounds the refinement loop.
	MaxRefineIterations int

	// RequestTimeout bounds one pipeline run end to end.
	RequestTimeout time.Duration

	// Debug enables debug logging.
	Debug bool

	// LogJSON switches log output to JSON.
	LogJSON bool
}

// Load reads configuration from environment variables, applying defaults
// for everything except the API key.
func Load() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		Port:                8080,
		QualityThreshold:    60,
		MaxRefineIterations: 3,
		RequestTimeout:      2 * time.Minute,
		Debug:               boolEnv("DEBUG"),
		LogJSON:             boolEnv("LOG_JSON"),
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("QUALITY_THRESHOLD"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid QUALITY_THRESHOLD %q: %w", v, err)
		}
		cfg.QualityThreshold = threshold
	}

	if v := os.Getenv("MAX_REFINE_ITERATIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_REFINE_ITERATIONS %q: %w", v, err)
		}
		cfg.MaxRefineIterations = n
	}

	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", v, err)
		}
		cfg.RequestTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values for sanity.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.QualityThreshold < 0 || c.QualityThreshold > 100 {
		return fmt.Errorf("quality threshold %.1f out of range", c.QualityThreshold)
	}
	if c.MaxRefineIterations < 1 {
		return fmt.Errorf("max refine iterations must be at least 1")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	return nil
}

func boolEnv(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
