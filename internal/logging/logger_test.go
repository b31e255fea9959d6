package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("scored call", slog.String("call_id", "abc"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["msg"] != "scored call" {
		t.Errorf("msg = %v", record["msg"])
	}
	if record["level"] != "info" {
		t.Errorf("level = %v", record["level"])
	}
	if record["call_id"] != "abc" {
		t.Errorf("call_id = %v", record["call_id"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info line should have been filtered at warn level")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn line missing from output")
	}
}

func TestWithCall(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	WithCall(logger, "call-123").Info("hello")

	if !strings.Contains(buf.String(), "call-123") {
		t.Error("call_id attribute missing")
	}
	if WithCall(nil, "x") == nil {
		t.Error("WithCall(nil) should return a usable logger")
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	logger.Error("goes nowhere")
}
