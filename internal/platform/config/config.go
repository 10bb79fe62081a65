// Package config provides configuration loading and validation for the CLI.
// Configuration is layered: built-in defaults -> config.yaml ->
// {profile}.yaml -> TODO_ environment variables.
package config

import "time"

// Config holds all configuration for the CLI.
type Config struct {
	Log           LogConfig           `koanf:"log"`
	Client        ClientConfig        `koanf:"client"`
	Pagination    PaginationConfig    `koanf:"pagination"`
	Collaborators CollaboratorsConfig `koanf:"collaborators"`
	Telemetry     TelemetryConfig     `koanf:"telemetry"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the task API client.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Token          string               `koanf:"token"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting. A zero
// RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// PaginationConfig controls listing requests.
type PaginationConfig struct {
	// PageSize is the number of items asked for per request.
	PageSize int `koanf:"page_size"`
}

// CollaboratorsConfig controls collaborator preloading.
type CollaboratorsConfig struct {
	MaxConcurrency int `koanf:"max_concurrency"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
