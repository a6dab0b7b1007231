// Package kv provides the durable local key-value store that backs all
// persisted panel state.
package kv

import "context"

// Keys under which the panel persists its state.
const (
	RestaurantsKey = "restaurants"
	AdminModeKey   = "admin_mode"
)

// Store is a named-value store. Get reports absence separately from errors
// so callers can distinguish "never saved" from a failing read.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
