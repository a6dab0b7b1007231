// Package notify implements transient user-facing toasts and the
// online/offline awareness signal.
package notify

import (
	"sync"
	"time"

	"github.com/jafar554/satr-panel/internal/clock"
)

// Level classifies a toast for display.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Toast is a transient message. It stays visible until ExpiresAt.
type Toast struct {
	ID        int       `json:"id"`
	Message   string    `json:"message"`
	Level     Level     `json:"level"`
	ExpiresAt time.Time `json:"expiresAt"`
}

const defaultToastTTL = 3 * time.Second

// Center holds the currently visible toasts in arrival order.
type Center struct {
	clock clock.Clock
	ttl   time.Duration

	mu     sync.Mutex
	nextID int
	toasts []Toast
}

func NewCenter(clk clock.Clock, opts ...CenterOption) *Center {
	c := &Center{
		clock: clk,
		ttl:   defaultToastTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type CenterOption func(*Center)

// WithToastTTL overrides the default toast lifetime.
func WithToastTTL(d time.Duration) CenterOption {
	return func(c *Center) {
		if d > 0 {
			c.ttl = d
		}
	}
}

// Notify enqueues a toast. Multiple toasts may be visible at once; they
// stack in arrival order and each self-removes when its lifetime elapses.
func (c *Center) Notify(message string, level Level) Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	c.pruneLocked(now)

	c.nextID++
	toast := Toast{
		ID:        c.nextID,
		Message:   message,
		Level:     level,
		ExpiresAt: now.Add(c.ttl),
	}
	c.toasts = append(c.toasts, toast)
	return toast
}

// Active returns the toasts still within their lifetime, oldest first.
func (c *Center) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pruneLocked(c.clock.Now())
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

func (c *Center) pruneLocked(now time.Time) {
	kept := c.toasts[:0]
	for _, toast := range c.toasts {
		if toast.ExpiresAt.After(now) {
			kept = append(kept, toast)
		}
	}
	c.toasts = kept
}
