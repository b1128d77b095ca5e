// Copyright (c) 2026 Tessa Davenport. All rights reserved.

package logging

import (
	"log/slog"
	"testing"

	"github.com/tessadav/dbhome/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNew(t *testing.T) {
	for _, format := range []string{"text", "json", ""} {
		log := New(config.LoggingConfig{Level: "debug", Format: format, Output: "stderr"}, "test")
		if log == nil || log.Logger == nil {
			t.Fatalf("New(%q) returned a nil logger", format)
		}
	}
}

func TestWith(t *testing.T) {
	log := Default()
	child := log.With("component", "store")
	if child == nil || child.Logger == nil {
		t.Fatal("With returned a nil logger")
	}
	if child == log {
		t.Error("With should return a new logger")
	}
}
