// Package config loads the reporter's TOML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full reporter configuration.
type Config struct {
	Store   StoreConfig   `toml:"store"`
	Scrape  ScrapeConfig  `toml:"scrape"`
	Payment PaymentConfig `toml:"payment"`
	Report  ReportConfig  `toml:"report"`
	Log     LogConfig     `toml:"log"`
}

// StoreConfig configures the embedded relational store.
type StoreConfig struct {
	DSN string `toml:"dsn"`
}

// ScrapeConfig configures the external results-page fetcher.
type ScrapeConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout returns the fetch timeout as a duration.
func (c ScrapeConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// PaymentConfig configures the payment provider client. An empty BaseURL
// disables the gate entirely (reports render unlocked).
type PaymentConfig struct {
	BaseURL        string `toml:"base_url"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout returns the provider timeout as a duration.
func (c PaymentConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ReportConfig configures report generation defaults.
type ReportConfig struct {
	Format       string `toml:"format"`
	OutputDir    string `toml:"output_dir"`
	TaxonomyPath string `toml:"taxonomy_path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Scrape: ScrapeConfig{
			TimeoutSeconds: 30,
		},
		Payment: PaymentConfig{
			TimeoutSeconds: 15,
		},
		Report: ReportConfig{
			Format:    "html",
			OutputDir: ".",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML configuration file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}
