package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
	"github.com/wayfind-labs/wayfind-cli/internal/core/ports/driven"
	"github.com/wayfind-labs/wayfind-cli/internal/core/ports/driving"
	"github.com/wayfind-labs/wayfind-cli/internal/logger"
)

// Ensure RecentService implements the interface.
var _ driving.RecentService = (*RecentService)(nil)

// recentKey is the key-value store key for the serialized list.
const recentKey = "recent_searches"

// RecentService keeps the ordered list of past selections.
// Every mutation is persisted synchronously; a failing store degrades
// the list to in-memory only rather than failing the caller.
type RecentService struct {
	mu      sync.Mutex
	store   driven.KeyValueStore
	entries []domain.RecentSearch
	max     int
	now     func() time.Time
}

// NewRecentService creates the service and loads any persisted list.
// The store is optional (can be nil); corrupt or unreadable data
// degrades to an empty list.
func NewRecentService(ctx context.Context, store driven.KeyValueStore, max int) *RecentService {
	if max <= 0 {
		max = domain.DefaultMaxRecent
	}
	s := &RecentService{
		store: store,
		max:   max,
		now:   time.Now,
	}
	s.entries = s.load(ctx)
	return s
}

// Record inserts a selection at the front of the list.
// Whitespace-only terms are ignored, duplicates by name are removed
// first, and the list is truncated to the configured maximum.
func (s *RecentService) Record(ctx context.Context, term string, entity domain.Entity) {
	if strings.TrimSpace(term) == "" {
		logger.Debug("Recent: ignoring empty term")
		return
	}
	if entity.Name == "" || !entity.Type.IsValid() {
		logger.Debug("Recent: ignoring invalid entity %q", entity.Name)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.entries[:0:0]
	for _, e := range s.entries {
		if e.Name != entity.Name {
			filtered = append(filtered, e)
		}
	}

	entry := domain.RecentSearch{
		Term:      term,
		Name:      entity.Name,
		Type:      entity.Type,
		Timestamp: s.now().UnixMilli(),
	}
	s.entries = append([]domain.RecentSearch{entry}, filtered...)
	if len(s.entries) > s.max {
		s.entries = s.entries[:s.max]
	}

	s.persist(ctx)
}

// List returns a copy of the recent searches, most recent first.
func (s *RecentService) List(ctx context.Context) []domain.RecentSearch {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.RecentSearch, len(s.entries))
	copy(out, s.entries)
	return out
}

// Remove deletes the entry at index; out-of-range indices are ignored.
func (s *RecentService) Remove(ctx context.Context, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries) {
		return
	}
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	s.persist(ctx)
}

// Clear empties the list.
func (s *RecentService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	s.persist(ctx)
}

// load reads the persisted list. Read failures (missing key, corrupt
// JSON, storage unavailable) all degrade to an empty list.
func (s *RecentService) load(ctx context.Context) []domain.RecentSearch {
	if s.store == nil {
		return nil
	}

	raw, err := s.store.GetItem(ctx, recentKey)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Recent: load failed, starting empty: %v", err)
		}
		return nil
	}

	var entries []domain.RecentSearch
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		logger.Warn("Recent: corrupt persisted list, starting empty: %v", err)
		return nil
	}

	// Discard malformed records so one bad entry does not poison the
	// dedup and cap invariants.
	valid := entries[:0]
	for _, e := range entries {
		if e.Validate() == nil {
			valid = append(valid, e)
		}
	}
	if len(valid) > s.max {
		valid = valid[:s.max]
	}
	return valid
}

// persist writes the list synchronously. Failures are logged and the
// in-memory list stays authoritative for the session.
func (s *RecentService) persist(ctx context.Context) {
	if s.store == nil {
		return
	}

	data, err := json.Marshal(s.entries)
	if err != nil {
		logger.Warn("Recent: marshal failed: %v", err)
		return
	}
	if err := s.store.SetItem(ctx, recentKey, string(data)); err != nil {
		logger.Warn("Recent: persist failed, list is in-memory only: %v", err)
	}
}
