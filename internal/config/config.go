// Package config provides configuration management for the Value Hunter application.
package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Engine   EngineConfig   `mapstructure:"engine" validate:"required"`
	OddsFeed OddsFeedConfig `mapstructure:"odds_feed" validate:"required"`
	Analysis AnalysisConfig `mapstructure:"analysis" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics" validate:"required"`
	Features FeaturesConfig `mapstructure:"features"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host               string `mapstructure:"host" validate:"required"`
	Port               int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Name               string `mapstructure:"name" validate:"required"`
	User               string `mapstructure:"user" validate:"required"`
	Password           string `mapstructure:"password" validate:"required"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"required,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"required,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"required,gt=0"`
}

// EngineConfig represents the odds valuation engine weights and thresholds.
// These are explicit configuration rather than process-wide constants so
// alternate weightings can be tested deterministically.
type EngineConfig struct {
	BaseScore           float64 `mapstructure:"base_score" validate:"required,gt=0,lte=1"`
	FormWeight          float64 `mapstructure:"form_weight" validate:"gte=0,lte=1"`
	HomeAdvantageWeight float64 `mapstructure:"home_advantage_weight" validate:"gte=0,lte=1"`
	DrawPrior           float64 `mapstructure:"draw_prior" validate:"gte=0,lt=1"`
	MinEVThreshold      float64 `mapstructure:"min_ev_threshold" validate:"gte=0"`
	KellyFraction       float64 `mapstructure:"kelly_fraction" validate:"gte=0,lte=1"`
}

// OddsFeedConfig represents the live odds feed client configuration
type OddsFeedConfig struct {
	Enabled             bool     `mapstructure:"enabled"`
	BaseURL             string   `mapstructure:"base_url" validate:"required,url"`
	APIKey              string   `mapstructure:"api_key"`
	Regions             []string `mapstructure:"regions" validate:"required,min=1"`
	Markets             []string `mapstructure:"markets" validate:"required,min=1"`
	LiveWindowMinutes   int      `mapstructure:"live_window_minutes" validate:"required,gt=0"`
	TimeoutSeconds      int      `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	MaxRetries          int      `mapstructure:"max_retries" validate:"gte=0"`
	RateLimitPerSecond  float64  `mapstructure:"rate_limit_per_second" validate:"required,gt=0"`
	CacheTTLSeconds     int      `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
	PollIntervalSeconds int      `mapstructure:"poll_interval_seconds" validate:"required,gt=0"`
}

// AnalysisConfig represents batch analysis configuration
type AnalysisConfig struct {
	BatchLimit     int  `mapstructure:"batch_limit" validate:"required,gt=0"`
	PersistResults bool `mapstructure:"persist_results"`
	DemoMode       bool `mapstructure:"demo_mode"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// FeaturesConfig represents feature flags
type FeaturesConfig struct {
	SchedulerEnabled   bool `mapstructure:"scheduler_enabled"`
	PersistenceEnabled bool `mapstructure:"persistence_enabled"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the application is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
