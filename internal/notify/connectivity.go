package notify

import (
	"context"
	"sync"
)

// OfflineMessage is shown when the panel loses connectivity. Going back
// online only flips the status indicator and stays silent.
const OfflineMessage = "أنت الآن غير متصل بالإنترنت. يمكن الوصول إلى البيانات المخزنة مؤقتًا فقط."

// Source emits online/offline edge events and exposes the current state.
type Source interface {
	Online() bool
	Events() <-chan bool
}

// Signal is a settable Source. Set only emits on actual transitions.
type Signal struct {
	mu     sync.Mutex
	online bool
	events chan bool
}

func NewSignal(online bool) *Signal {
	return &Signal{
		online: online,
		events: make(chan bool, 16),
	}
}

func (s *Signal) Online() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online
}

func (s *Signal) Events() <-chan bool {
	return s.events
}

// Set records the current connectivity. Edges are forwarded to Events;
// a full buffer drops the event rather than blocking the caller.
func (s *Signal) Set(online bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.online == online {
		return
	}
	s.online = online
	select {
	case s.events <- online:
	default:
	}
}

// Watcher reflects connectivity transitions into the toast center and the
// status indicator.
type Watcher struct {
	center *Center

	mu     sync.Mutex
	online bool
}

func NewWatcher(center *Center, online bool) *Watcher {
	return &Watcher{center: center, online: online}
}

// Online reports the last observed connectivity state.
func (w *Watcher) Online() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.online
}

// Run consumes edges from src until ctx is cancelled. The offline edge
// emits an informational toast; the online edge updates the indicator only.
func (w *Watcher) Run(ctx context.Context, src Source) {
	for {
		select {
		case <-ctx.Done():
			return
		case online, ok := <-src.Events():
			if !ok {
				return
			}
			w.apply(online)
		}
	}
}

func (w *Watcher) apply(online bool) {
	w.mu.Lock()
	changed := w.online != online
	w.online = online
	w.mu.Unlock()

	if changed && !online {
		w.center.Notify(OfflineMessage, LevelInfo)
	}
}
