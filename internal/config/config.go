// Copyright (c) 2026 Tessa Davenport. All rights reserved.

// Package config loads the application configuration from YAML with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	// AppName is the subdirectory under the data directory that holds
	// database files.
	AppName string `yaml:"app_name"`

	// DataDir overrides the platform application-data directory.
	// Empty means os.UserConfigDir.
	DataDir string `yaml:"data_dir"`

	// SchemaPath is an external schema script. Empty means the
	// embedded default schema.
	SchemaPath string `yaml:"schema_path"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads the YAML file at path over the defaults, applies DBHOME_*
// environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with the built-in defaults and environment
// overrides applied. Used when no config file is present.
func Default() *Config {
	cfg := &Config{
		AppName: "dbhome",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
	applyEnvOverrides(cfg)
	return cfg
}

// applyEnvOverrides applies environment variable overrides.
// Variables follow the pattern DBHOME_KEY.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DBHOME_APP_NAME"); v != "" {
		cfg.AppName = v
	}
	if v := os.Getenv("DBHOME_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("DBHOME_SCHEMA_PATH"); v != "" {
		cfg.SchemaPath = v
	}
	if v := os.Getenv("DBHOME_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.AppName) == "" {
		errs = append(errs, "app_name is required")
	}
	if strings.ContainsAny(c.AppName, `/\`) {
		errs = append(errs, "app_name must not contain path separators")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}
