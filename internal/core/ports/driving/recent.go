package driving

import (
	"context"

	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
)

// RecentService maintains the persisted recent-search list.
type RecentService interface {
	// Record inserts a selection at the front of the list,
	// deduplicating by entity name and truncating to the configured
	// maximum. Empty or whitespace-only terms are ignored.
	Record(ctx context.Context, term string, entity domain.Entity)

	// List returns the recent searches, most recent first.
	List(ctx context.Context) []domain.RecentSearch

	// Remove deletes the entry at index. Out-of-range indices are
	// ignored.
	Remove(ctx context.Context, index int)

	// Clear empties the list.
	Clear(ctx context.Context)
}
