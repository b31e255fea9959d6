package testsupport

import (
	"testing"

	"vauxly/internal/callstore"
	"vauxly/internal/config"
)

// MustOpenStore opens a call store for the provided config and registers
// cleanup on test exit. Failures abort the test.
func MustOpenStore(t testing.TB, cfg *config.Config) *callstore.Store {
	t.Helper()

	store, err := callstore.Open(cfg)
	if err != nil {
		t.Fatalf("open call store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close call store: %v", err)
		}
	})
	return store
}
