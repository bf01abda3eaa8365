package driven

import (
	"context"

	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
)

// EntitySource supplies the raw entity collections. Data may arrive
// after engine construction; the engine must tolerate querying before
// the source is ready and retry transparently once it is.
type EntitySource interface {
	// Collections returns the loaded entity tiers.
	// Returns domain.ErrDataNotReady before the first load completes.
	Collections(ctx context.Context) (domain.Collections, error)

	// Ready is closed once the first load completes. Subsequent full
	// reloads replace the collection wholesale; it is never patched
	// in place.
	Ready() <-chan struct{}

	// Reloaded signals each replacement of the collection after the
	// first load. Consumers re-run their last query on receipt.
	Reloaded() <-chan struct{}

	// Close releases resources such as file watchers.
	Close() error
}
