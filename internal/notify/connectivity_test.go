package notify

import (
	"testing"
	"time"

	"github.com/jafar554/satr-panel/internal/clock"
)

func TestWatcher_OfflineEdgeEmitsInfoToast(t *testing.T) {
	clk := clock.NewManual(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	center := NewCenter(clk)
	watcher := NewWatcher(center, true)

	watcher.apply(false)

	if watcher.Online() {
		t.Fatal("expected offline")
	}
	active := center.Active()
	if len(active) != 1 {
		t.Fatalf("expected 1 toast, got %d", len(active))
	}
	if active[0].Level != LevelInfo {
		t.Fatalf("expected info toast, got %q", active[0].Level)
	}
	if active[0].Message != OfflineMessage {
		t.Fatalf("unexpected message %q", active[0].Message)
	}
}

func TestWatcher_OnlineEdgeIsSilent(t *testing.T) {
	clk := clock.NewManual(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	center := NewCenter(clk)
	watcher := NewWatcher(center, false)

	watcher.apply(true)

	if !watcher.Online() {
		t.Fatal("expected online")
	}
	if active := center.Active(); len(active) != 0 {
		t.Fatalf("expected no toast on the online edge, got %d", len(active))
	}
}

func TestWatcher_RepeatedStateIsIgnored(t *testing.T) {
	clk := clock.NewManual(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	center := NewCenter(clk)
	watcher := NewWatcher(center, false)

	watcher.apply(false)

	if active := center.Active(); len(active) != 0 {
		t.Fatalf("expected no toast without a transition, got %d", len(active))
	}
}

func TestSignal_EmitsOnlyOnEdges(t *testing.T) {
	signal := NewSignal(true)

	signal.Set(true)
	select {
	case <-signal.Events():
		t.Fatal("expected no event without a transition")
	default:
	}

	signal.Set(false)
	select {
	case online := <-signal.Events():
		if online {
			t.Fatal("expected offline event")
		}
	default:
		t.Fatal("expected an event on the offline edge")
	}
	if signal.Online() {
		t.Fatal("expected signal to report offline")
	}
}
