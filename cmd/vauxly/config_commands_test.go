package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInit(t *testing.T) {
	env := setupCLITestEnv(t)

	tmp := t.TempDir()
	target := filepath.Join(tmp, "config.toml")
	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, env.configPath)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	// Refuses to clobber without --overwrite.
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, env.configPath); err == nil {
		t.Fatal("expected error when config file exists")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, env.configPath); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigShow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, env.configPath)
	requireContains(t, out, "data_dir")
	requireContains(t, out, "fuzzy_fallback")
}

func TestHelpersFormatClock(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{59.9, "0:59"},
		{60, "1:00"},
		{125, "2:05"},
		{-3, "0:00"},
	}
	for _, tc := range cases {
		if got := formatClock(tc.seconds); got != tc.want {
			t.Errorf("formatClock(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestHelpersSpeakerLabel(t *testing.T) {
	if got := speakerLabel("CUSTOMER"); got != "Customer" {
		t.Errorf("speakerLabel = %q, want Customer", got)
	}
}
