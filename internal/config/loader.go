// Package config provides configuration management for the Value Hunter application.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "VALUE_HUNTER"

// Load reads and parses the configuration from file and environment variables.
// It expands environment variable placeholders in the YAML file (${VAR_NAME})
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the configuration (${VAR} syntax)
	expanded := os.ExpandEnv(string(data))

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// LoadWithDefaults loads configuration with default values for optional
// fields, tolerating a missing config file so the engine defaults can run
// from environment variables alone.
func LoadWithDefaults(configPath string) (*Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = "config/config.yaml"
	}

	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setEngineDefaults(v)
	v.SetDefault("app.name", "value-hunter")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "value_hunter")
	v.SetDefault("database.user", "hunter")
	v.SetDefault("database.password", "hunter")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_idle_connections", 5)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("analysis.batch_limit", 25)
	v.SetDefault("analysis.demo_mode", false)
	v.SetDefault("odds_feed.base_url", "https://api.the-odds-api.com")
	v.SetDefault("odds_feed.regions", []string{"us", "uk"})
	v.SetDefault("odds_feed.markets", []string{"h2h"})
	v.SetDefault("odds_feed.live_window_minutes", 180)
	v.SetDefault("odds_feed.timeout_seconds", 10)
	v.SetDefault("odds_feed.max_retries", 3)
	v.SetDefault("odds_feed.rate_limit_per_second", 2.0)
	v.SetDefault("odds_feed.cache_ttl_seconds", 60)
	v.SetDefault("odds_feed.poll_interval_seconds", 300)

	if data, err := os.ReadFile(configPath); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	// If file doesn't exist, continue with defaults and environment variables

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// setEngineDefaults seeds the documented engine model defaults.
func setEngineDefaults(v *viper.Viper) {
	v.SetDefault("engine.base_score", 0.5)
	v.SetDefault("engine.form_weight", 0.2)
	v.SetDefault("engine.home_advantage_weight", 0.1)
	v.SetDefault("engine.draw_prior", 0.10)
	v.SetDefault("engine.min_ev_threshold", 0.05)
	v.SetDefault("engine.kelly_fraction", 0.25)
}
