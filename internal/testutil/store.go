package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jafar554/satr-panel/internal/kv"
)

// NewSQLiteStore opens a SQLite-backed kv store in a per-test temp dir and
// closes it when the test ends.
func NewSQLiteStore(t *testing.T) *kv.SQLite {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := kv.OpenSQLite(ctx, filepath.Join(t.TempDir(), "panel.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
