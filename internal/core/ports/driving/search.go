package driving

import (
	"context"

	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
)

// SearchService ranks geographic entities against partial user input.
type SearchService interface {
	// Search returns the ranked results for query. An empty query
	// yields the tiered default view; a missing dataset yields an
	// empty list, never an error.
	Search(ctx context.Context, query string, opts domain.SearchOptions) []domain.RankedResult

	// Ready is closed once the entity data is available. The TUI
	// re-runs the last query when this fires with text still in the
	// input.
	Ready() <-chan struct{}

	// Reloaded signals a wholesale dataset replacement.
	Reloaded() <-chan struct{}
}
