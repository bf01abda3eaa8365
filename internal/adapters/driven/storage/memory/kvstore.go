// Package memory provides in-memory implementations of the driven
// storage ports, used in tests and as the degraded fallback when the
// SQLite store cannot be opened.
package memory

import (
	"context"
	"sync"

	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
	"github.com/wayfind-labs/wayfind-cli/internal/core/ports/driven"
)

// Ensure KVStore implements the interface.
var _ driven.KeyValueStore = (*KVStore)(nil)

// KVStore is an in-memory implementation of driven.KeyValueStore.
type KVStore struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewKVStore creates a new in-memory key-value store.
func NewKVStore() *KVStore {
	return &KVStore{items: make(map[string]string)}
}

// GetItem retrieves the value stored under key.
func (s *KVStore) GetItem(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return value, nil
}

// SetItem stores value under key.
func (s *KVStore) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value
	return nil
}

// Close is a no-op.
func (s *KVStore) Close() error {
	return nil
}

// Len returns the number of stored keys.
func (s *KVStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
