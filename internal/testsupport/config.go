package testsupport

import (
	"path/filepath"
	"testing"

	"vauxly/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithLogFormat overrides the logging format on the test config.
func WithLogFormat(format string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Logging.Format = format
	}
}

// WithoutFuzzyFallback disables fingerprint search fallback on the test
// config.
func WithoutFuzzyFallback() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Search.FuzzyFallback = false
	}
}
