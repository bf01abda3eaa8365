package driving

import (
	"context"

	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
)

// SelectionOptions carries the optional parts of a selection.
type SelectionOptions struct {
	// Coordinates is the fly-to target, when the entity has one.
	Coordinates *domain.Coordinates

	// IsRecent marks selections of an existing recent entry; these
	// are not re-recorded, so recency cannot inflate itself.
	IsRecent bool
}

// SelectionService translates a chosen result into its side effects:
// filter checkbox, map command, recency record.
type SelectionService interface {
	// Select dispatches the side effects for a chosen result.
	// Dispatch failures degrade (they are logged, not returned); the
	// error reports only invalid input.
	Select(ctx context.Context, term string, entityType domain.EntityType, opts SelectionOptions) error

	// Suppressed reports whether a selection is inside its
	// cooling-down window. External map-click handlers consult this
	// to avoid double-firing the shared side-effect pipeline.
	Suppressed() bool
}
