//-------------------------------------------------------------------------
//
// retail-etl
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for retail-etl.
// Configuration is loaded from config files and CLI flags (no environment variables).
// CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// DateFormat is the date layout used for config values.
const DateFormat = "2006-01-02"

// Config holds all configuration for retail-etl.
type Config struct {
	// Connection is the PostgreSQL connection string.
	Connection string `mapstructure:"connection"`

	// DataDir is the directory holding the generated CSV files.
	DataDir string `mapstructure:"data_dir"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Generate holds configuration for the generate subcommand.
	Generate GenerateConfig `mapstructure:"generate"`
}

// GenerateConfig holds configuration for dataset generation.
type GenerateConfig struct {
	// Customers is the number of customers to generate.
	Customers int `mapstructure:"customers"`

	// Products is the number of products to generate.
	Products int `mapstructure:"products"`

	// Stores is the number of stores to generate.
	Stores int `mapstructure:"stores"`

	// Sales is the number of sales transactions to generate.
	Sales int `mapstructure:"sales"`

	// Seed seeds the random generator (0 = time-derived, non-reproducible).
	Seed uint64 `mapstructure:"seed"`

	// StartDate is the first sale date (YYYY-MM-DD, inclusive).
	StartDate string `mapstructure:"start_date"`

	// EndDate is the last sale date (YYYY-MM-DD, inclusive).
	EndDate string `mapstructure:"end_date"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataDir:  "data",
		LogLevel: "info",
		Generate: GenerateConfig{
			Customers: 500,
			Products:  200,
			Stores:    10,
			Sales:     10000,
			StartDate: "2023-01-01",
			EndDate:   "2024-12-31",
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./retail-etl.yaml
// 3. ~/.config/retail-etl/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("retail-etl")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "retail-etl"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Start with defaults
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// DateRange parses the configured start and end dates.
func (g *GenerateConfig) DateRange() (start, end time.Time, err error) {
	start, err = time.Parse(DateFormat, g.StartDate)
	if err != nil {
		return start, end, fmt.Errorf("invalid start_date: %w", err)
	}
	end, err = time.Parse(DateFormat, g.EndDate)
	if err != nil {
		return start, end, fmt.Errorf("invalid end_date: %w", err)
	}
	return start, end, nil
}

// ValidateGenerate checks configuration required for the generate command.
func (c *Config) ValidateGenerate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	g := c.Generate
	if g.Customers < 1 {
		return fmt.Errorf("customers must be at least 1")
	}
	if g.Products < 1 {
		return fmt.Errorf("products must be at least 1")
	}
	if g.Stores < 1 {
		return fmt.Errorf("stores must be at least 1")
	}
	if g.Sales < 1 {
		return fmt.Errorf("sales must be at least 1")
	}
	start, end, err := g.DateRange()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("end_date must not be before start_date")
	}
	return nil
}

// ValidateLoad checks configuration required for the load command.
func (c *Config) ValidateLoad() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	return nil
}
