package driven

import "context"

// KeyValueStore is the synchronous persistence contract for small
// engine state such as the recent-search list. Backed by SQLite.
//
// Failures are reported as errors, never panics; callers at the
// service boundary degrade to in-memory state when the store fails.
type KeyValueStore interface {
	// GetItem retrieves the value stored under key.
	// Returns domain.ErrNotFound when the key is absent.
	GetItem(ctx context.Context, key string) (string, error)

	// SetItem stores value under key, replacing any previous value.
	// The write is durable before the call returns.
	SetItem(ctx context.Context, key, value string) error

	// Close releases resources.
	Close() error
}
