package kv_test

import (
	"context"
	"testing"

	"github.com/jafar554/satr-panel/internal/kv"
	"github.com/jafar554/satr-panel/internal/testutil"
)

func TestSQLite_GetAbsent(t *testing.T) {
	store := testutil.NewSQLiteStore(t)

	_, ok, err := store.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected absent key")
	}
}

func TestSQLite_SetGetRemove(t *testing.T) {
	store := testutil.NewSQLiteStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, kv.RestaurantsKey, `[{"id":1}]`); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, ok, err := store.Get(ctx, kv.RestaurantsKey)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || value != `[{"id":1}]` {
		t.Fatalf("expected stored value, got %q ok=%v", value, ok)
	}

	if err := store.Set(ctx, kv.RestaurantsKey, `[]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, _, err = store.Get(ctx, kv.RestaurantsKey)
	if err != nil {
		t.Fatalf("get after overwrite: %v", err)
	}
	if value != `[]` {
		t.Fatalf("expected overwritten value, got %q", value)
	}

	if err := store.Remove(ctx, kv.RestaurantsKey); err != nil {
		t.Fatalf("remove: %v", err)
	}
	_, ok, err = store.Get(ctx, kv.RestaurantsKey)
	if err != nil {
		t.Fatalf("get after remove: %v", err)
	}
	if ok {
		t.Fatal("expected key removed")
	}
}

func TestSQLite_RemoveAbsentIsNoop(t *testing.T) {
	store := testutil.NewSQLiteStore(t)

	if err := store.Remove(context.Background(), "missing"); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := t.TempDir() + "/panel.db"

	first, err := kv.OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Set(ctx, kv.AdminModeKey, "true"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := kv.OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { _ = second.Close() })

	value, ok, err := second.Get(ctx, kv.AdminModeKey)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || value != "true" {
		t.Fatalf("expected persisted value, got %q ok=%v", value, ok)
	}
}
