package notify

import (
	"testing"
	"time"

	"github.com/jafar554/satr-panel/internal/clock"
)

func TestCenter_ToastExpiresAfterTTL(t *testing.T) {
	clk := clock.NewManual(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	center := NewCenter(clk)

	toast := center.Notify("تم تحديث البيانات", LevelSuccess)
	if got := toast.ExpiresAt.Sub(clk.Now()); got != 3*time.Second {
		t.Fatalf("expected 3s lifetime, got %v", got)
	}

	if active := center.Active(); len(active) != 1 {
		t.Fatalf("expected 1 active toast, got %d", len(active))
	}

	clk.Advance(2999 * time.Millisecond)
	if active := center.Active(); len(active) != 1 {
		t.Fatalf("expected toast still visible, got %d", len(active))
	}

	clk.Advance(time.Millisecond)
	if active := center.Active(); len(active) != 0 {
		t.Fatalf("expected toast expired, got %d", len(active))
	}
}

func TestCenter_StacksInArrivalOrder(t *testing.T) {
	clk := clock.NewManual(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	center := NewCenter(clk)

	center.Notify("first", LevelInfo)
	clk.Advance(time.Second)
	center.Notify("second", LevelError)

	active := center.Active()
	if len(active) != 2 {
		t.Fatalf("expected 2 active toasts, got %d", len(active))
	}
	if active[0].Message != "first" || active[1].Message != "second" {
		t.Fatalf("expected arrival order, got %q then %q", active[0].Message, active[1].Message)
	}
	if active[1].Level != LevelError {
		t.Fatalf("expected error level, got %q", active[1].Level)
	}
}

func TestCenter_CustomTTL(t *testing.T) {
	clk := clock.NewManual(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	center := NewCenter(clk, WithToastTTL(10*time.Second))

	center.Notify("slow", LevelInfo)
	clk.Advance(5 * time.Second)
	if active := center.Active(); len(active) != 1 {
		t.Fatalf("expected toast visible at 5s, got %d", len(active))
	}
	clk.Advance(5 * time.Second)
	if active := center.Active(); len(active) != 0 {
		t.Fatalf("expected toast expired at 10s, got %d", len(active))
	}
}
