package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	Catalog   CatalogConfig
	I18n      I18nConfig
	Search    SearchConfig
	Suggest   SuggestConfig
	Recency   RecencyConfig
	Executor  ExecutorConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// CatalogConfig holds catalog seeding configuration.
type CatalogConfig struct {
	BundleDir string `envconfig:"CATALOG_BUNDLE_DIR" default:""`
}

// I18nConfig holds label resolution configuration.
type I18nConfig struct {
	DefaultLanguage  string `envconfig:"DEFAULT_LANG" default:"en"`
	FallbackLanguage string `envconfig:"FALLBACK_LANG" default:"en"`
}

// SearchConfig holds search engine defaults.
type SearchConfig struct {
	Limit    int `envconfig:"SEARCH_LIMIT" default:"10"`
	MinScore int `envconfig:"SEARCH_MIN_SCORE" default:"5"`
}

// SuggestConfig holds suggestion engine defaults.
type SuggestConfig struct {
	Limit int `envconfig:"SUGGEST_LIMIT" default:"5"`
}

// RecencyConfig holds the recency tracker's persistence settings.
type RecencyConfig struct {
	Dir      string `envconfig:"RECENCY_DIR" default:"/tmp/servicetree"`
	Key      string `envconfig:"RECENCY_KEY" default:"servicetree.recent"`
	Capacity int    `envconfig:"RECENCY_CAPACITY" default:"10"`
}

// ExecutorConfig holds action execution settings.
type ExecutorConfig struct {
	SignalDelayMS int `envconfig:"SIGNAL_DELAY_MS" default:"120"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Port: "8080", Host: "0.0.0.0"},
		Logging:   LogConfig{Level: "info"},
		I18n:      I18nConfig{DefaultLanguage: "en", FallbackLanguage: "en"},
		Search:    SearchConfig{Limit: 10, MinScore: 5},
		Suggest:   SuggestConfig{Limit: 5},
		Recency:   RecencyConfig{Dir: "/tmp/servicetree", Key: "servicetree.recent", Capacity: 10},
		Executor:  ExecutorConfig{SignalDelayMS: 120},
		RateLimit: RateLimitConfig{RequestsPerSecond: 100, Burst: 200, Enabled: true},
	}
}
