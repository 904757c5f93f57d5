package testsupport

import (
	"testing"

	"cuealign/internal/config"
	"cuealign/internal/runs"
)

// MustOpenStore opens a runs store against the test config and registers
// cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *runs.Store {
	t.Helper()

	store, err := runs.Open(cfg)
	if err != nil {
		t.Fatalf("open runs store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close runs store: %v", err)
		}
	})
	return store
}
