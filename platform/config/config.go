// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// OverpassConfig provides settings for the Overpass API client.
type OverpassConfig interface {
	GetOverpassURL() string
	GetOverpassTimeout() time.Duration
	GetOverpassRate() float64
}

// CacheConfig provides settings for the Redis response cache.
type CacheConfig interface {
	GetRedisAddr() string
	GetCacheTTL() time.Duration
	IsCacheEnabled() bool
}

// ReportConfig provides settings for report rendering.
type ReportConfig interface {
	GetOutputDir() string
	GetLocale() string
}

// AuditConfig provides settings for the audit run itself.
type AuditConfig interface {
	GetCountries() []string
	GetConcurrency() int
	GetExclusionsFile() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env             string
	OutputDir       string
	Locale          string
	Countries       []string
	Concurrency     int
	ExclusionsFile  string
	OverpassURL     string
	OverpassTimeout time.Duration
	OverpassRate    float64
	RedisAddr       string
	CacheTTL        time.Duration
}

// =============================================================================
// Interface Implementations
// =============================================================================

// OverpassConfig implementation
func (c *Config) GetOverpassURL() string            { return c.OverpassURL }
func (c *Config) GetOverpassTimeout() time.Duration { return c.OverpassTimeout }
func (c *Config) GetOverpassRate() float64          { return c.OverpassRate }

// CacheConfig implementation
func (c *Config) GetRedisAddr() string       { return c.RedisAddr }
func (c *Config) GetCacheTTL() time.Duration { return c.CacheTTL }
func (c *Config) IsCacheEnabled() bool       { return c.RedisAddr != "" }

// ReportConfig implementation
func (c *Config) GetOutputDir() string { return c.OutputDir }
func (c *Config) GetLocale() string    { return c.Locale }

// AuditConfig implementation
func (c *Config) GetCountries() []string    { return c.Countries }
func (c *Config) GetConcurrency() int       { return c.Concurrency }
func (c *Config) GetExclusionsFile() string { return c.ExclusionsFile }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:             getEnv("APP_ENV", "development"),
		OutputDir:       getEnv("OUTPUT_DIR", "public"),
		Locale:          getEnv("LOCALE", "en"),
		Countries:       splitCSV(getEnv("COUNTRIES", "")),
		Concurrency:     mustInt(getEnv("CONCURRENCY", "4")),
		ExclusionsFile:  getEnv("EXCLUSIONS_FILE", ""),
		OverpassURL:     getEnv("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
		OverpassTimeout: mustDuration(getEnv("OVERPASS_TIMEOUT", "180s")),
		OverpassRate:    mustFloat(getEnv("OVERPASS_RATE", "0.5")),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		CacheTTL:        mustDuration(getEnv("CACHE_TTL", "24h")),
	}

	if len(cfg.Countries) == 0 {
		return nil, fmt.Errorf("COUNTRIES is required (comma-separated ISO3166-1 codes)")
	}
	if cfg.Concurrency < 1 {
		return nil, fmt.Errorf("CONCURRENCY must be at least 1")
	}
	if cfg.OverpassRate <= 0 {
		return nil, fmt.Errorf("OVERPASS_RATE must be positive")
	}
	if cfg.OverpassTimeout <= 0 {
		return nil, fmt.Errorf("OVERPASS_TIMEOUT must be a positive duration")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.ToUpper(strings.TrimSpace(part))
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}
