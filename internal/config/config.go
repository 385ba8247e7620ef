// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/logger"
)

// Provider names accepted by PROVIDER.
const (
	ProviderFixtures  = "fixtures"
	ProviderSearoutes = "searoutes"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Timeouts  TimeoutConfig
	Logging   logger.Config
	App       AppConfig
	Provider  ProviderConfig
	Searoutes SearoutesConfig
	Cache     CacheConfig
	Catalog   CatalogConfig
	CORS      CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
}

// TimeoutConfig holds timeout settings for schedule lookups.
type TimeoutConfig struct {
	// Provider bounds one full lookup: resolution, itinerary search and retries.
	Provider time.Duration `env:"TIMEOUT_PROVIDER" envDefault:"30s"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// ProviderConfig selects the schedule source.
type ProviderConfig struct {
	Name string `env:"PROVIDER" envDefault:"fixtures"`

	// FixturesPath is the sample file served by the fixtures provider.
	FixturesPath string `env:"FIXTURES_PATH" envDefault:"data/fixtures/schedules.sample.json"`
}

// SearoutesConfig holds the upstream API settings.
type SearoutesConfig struct {
	BaseURL       string        `env:"SEAROUTES_BASE_URL" envDefault:"https://api.searoutes.com"`
	APIKey        string        `env:"SEAROUTES_API_KEY"`
	AuthScheme    string        `env:"SEAROUTES_AUTH_SCHEME" envDefault:"bearer"`
	AcceptVersion string        `env:"SEAROUTES_ACCEPT_VERSION" envDefault:"2.0"`
	Timeout       time.Duration `env:"SEAROUTES_TIMEOUT" envDefault:"10s"`

	RetryMaxAttempts  int           `env:"SEAROUTES_RETRY_MAX_ATTEMPTS" envDefault:"3"`
	RetryInitialDelay time.Duration `env:"SEAROUTES_RETRY_INITIAL_DELAY" envDefault:"250ms"`
	RetryMaxDelay     time.Duration `env:"SEAROUTES_RETRY_MAX_DELAY" envDefault:"4s"`
}

// CacheConfig holds resolver cache lifetimes.
type CacheConfig struct {
	PortTTL    time.Duration `env:"CACHE_PORT_TTL" envDefault:"300s"`
	CarrierTTL time.Duration `env:"CACHE_CARRIER_TTL" envDefault:"3600s"`
}

// CatalogConfig points at the autocomplete datasets.
type CatalogConfig struct {
	PortsPath    string `env:"CATALOG_PORTS_PATH" envDefault:"data/ports.json"`
	CarriersPath string `env:"CATALOG_CARRIERS_PATH" envDefault:"data/carriers.json"`
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	Origins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000,http://localhost:5175,http://127.0.0.1:5175"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	normalize(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func normalize(cfg *Config) {
	cfg.Provider.Name = strings.ToLower(strings.TrimSpace(cfg.Provider.Name))
	cfg.Searoutes.AuthScheme = strings.ToLower(strings.TrimSpace(cfg.Searoutes.AuthScheme))
	cfg.Searoutes.APIKey = strings.TrimSpace(cfg.Searoutes.APIKey)

	origins := cfg.CORS.Origins[:0]
	for _, o := range cfg.CORS.Origins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.CORS.Origins = origins
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	positive := []struct {
		name string
		d    time.Duration
	}{
		{"SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout},
		{"TIMEOUT_PROVIDER", cfg.Timeouts.Provider},
		{"SEAROUTES_TIMEOUT", cfg.Searoutes.Timeout},
		{"CACHE_PORT_TTL", cfg.Cache.PortTTL},
		{"CACHE_CARRIER_TTL", cfg.Cache.CarrierTTL},
	}
	for _, p := range positive {
		if p.d <= 0 {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}

	// A single upstream call must fit in the lookup budget.
	if cfg.Searoutes.Timeout > cfg.Timeouts.Provider {
		return fmt.Errorf("SEAROUTES_TIMEOUT (%s) should not exceed TIMEOUT_PROVIDER (%s)",
			cfg.Searoutes.Timeout, cfg.Timeouts.Provider)
	}

	if err := validateProvider(cfg); err != nil {
		return err
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

func validateProvider(cfg *Config) error {
	switch cfg.Provider.Name {
	case ProviderFixtures:
		if cfg.Provider.FixturesPath == "" {
			return fmt.Errorf("FIXTURES_PATH is required when PROVIDER=%s", ProviderFixtures)
		}
	case ProviderSearoutes:
		if cfg.Searoutes.APIKey == "" {
			return fmt.Errorf("SEAROUTES_API_KEY is required when PROVIDER=%s", ProviderSearoutes)
		}
	default:
		return fmt.Errorf("PROVIDER must be one of: fixtures, searoutes; got %q", cfg.Provider.Name)
	}

	u, err := url.Parse(cfg.Searoutes.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("SEAROUTES_BASE_URL must be an absolute URL, got %q", cfg.Searoutes.BaseURL)
	}

	if cfg.Searoutes.AuthScheme != "bearer" && cfg.Searoutes.AuthScheme != "x-api-key" {
		return fmt.Errorf("SEAROUTES_AUTH_SCHEME must be one of: bearer, x-api-key; got %q", cfg.Searoutes.AuthScheme)
	}

	if cfg.Searoutes.RetryMaxAttempts < 1 {
		return fmt.Errorf("SEAROUTES_RETRY_MAX_ATTEMPTS must be at least 1, got %d", cfg.Searoutes.RetryMaxAttempts)
	}
	if cfg.Searoutes.RetryInitialDelay <= 0 || cfg.Searoutes.RetryMaxDelay < cfg.Searoutes.RetryInitialDelay {
		return fmt.Errorf("SEAROUTES_RETRY_INITIAL_DELAY must be positive and not exceed SEAROUTES_RETRY_MAX_DELAY")
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// UsesSearoutes reports whether schedules come from the live API.
func (c *Config) UsesSearoutes() bool {
	return c.Provider.Name == ProviderSearoutes
}
