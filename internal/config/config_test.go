// Copyright (c) 2026 Tessa Davenport. All rights reserved.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tessadav/dbhome/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	if cfg.AppName != "dbhome" {
		t.Errorf("expected app_name dbhome, got %q", cfg.AppName)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected info level, got %q", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dbhome.yaml")
	content := `
app_name: myapp
data_dir: /tmp/myapp-data
schema_path: /tmp/schema.sql
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.AppName != "myapp" {
		t.Errorf("expected myapp, got %q", cfg.AppName)
	}
	if cfg.DataDir != "/tmp/myapp-data" {
		t.Errorf("expected /tmp/myapp-data, got %q", cfg.DataDir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("unset keys should keep defaults, got output %q", cfg.Logging.Output)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load should fail for a missing file")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dbhome.yaml")
	if err := os.WriteFile(path, []byte("app_name: fromfile\n"), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("DBHOME_APP_NAME", "fromenv")
	t.Setenv("DBHOME_LOG_LEVEL", "warn")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AppName != "fromenv" {
		t.Errorf("env should override file, got %q", cfg.AppName)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("env should override log level, got %q", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.AppName = "  "
	if err := cfg.Validate(); err == nil {
		t.Error("blank app_name should fail validation")
	}

	cfg = config.Default()
	cfg.AppName = "a/b"
	if err := cfg.Validate(); err == nil {
		t.Error("app_name with path separator should fail validation")
	}

	cfg = config.Default()
	cfg.Logging.Level = "loudest"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown log level should fail validation")
	}
}
