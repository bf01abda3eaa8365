package driven

import "context"

// MapController commands the host map viewport. The engine only ever
// issues these two commands; it never reaches into map internals.
type MapController interface {
	// FlyTo moves the viewport to a coordinate. zoomHint suggests a
	// zoom level appropriate for the selected entity tier.
	FlyTo(ctx context.Context, lat, lng float64, zoomHint int) error

	// FitToBoundary frames the named administrative boundary.
	// Returns false when no boundary is known for the name; callers
	// fall back to a coordinate fly-to or a default reframe.
	FitToBoundary(ctx context.Context, name string) (bool, error)
}

// FilterForm exposes the checkbox state of the host filter form.
type FilterForm interface {
	// SetChecked sets the checkbox for (entityType, value).
	SetChecked(ctx context.Context, entityType, value string, checked bool) error
}
