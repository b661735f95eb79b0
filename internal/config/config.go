package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"fieldbill.app/billing/processor"
	"fieldbill.app/internal/logger"
)

// Config is the operator CLI configuration, read from the environment.
type Config struct {
	DatabaseURL     string
	StripeSecretKey string

	// APIBaseURL is the public origin of the billing API, used when the CLI
	// builds onboarding links that point back at it.
	APIBaseURL string

	ProcessorTimeout     time.Duration
	ProcessorReadRetries int64

	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	timeout, err := time.ParseDuration(getEnv("STRIPE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid STRIPE_TIMEOUT: %w", err)
	}
	retries, err := strconv.ParseInt(getEnv("STRIPE_READ_RETRIES", "2"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid STRIPE_READ_RETRIES: %w", err)
	}

	config := &Config{
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		StripeSecretKey:      getEnv("STRIPE_SECRET_KEY", ""),
		APIBaseURL:           getEnv("API_BASE_URL", "http://localhost:4000"),
		ProcessorTimeout:     timeout,
		ProcessorReadRetries: retries,
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:        getEnv("LOG_TIME_FORMAT", time.RFC3339),
		LogOutput:            getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.StripeSecretKey == "" {
		return fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	if c.ProcessorTimeout <= 0 {
		return fmt.Errorf("STRIPE_TIMEOUT must be positive")
	}
	if c.ProcessorReadRetries < 0 {
		return fmt.Errorf("STRIPE_READ_RETRIES must not be negative")
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func (c *Config) ProcessorOptions() processor.Options {
	return processor.Options{
		Timeout:     c.ProcessorTimeout,
		ReadRetries: c.ProcessorReadRetries,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
