package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
	"github.com/wayfind-labs/wayfind-cli/internal/core/ports/driven"
	"github.com/wayfind-labs/wayfind-cli/internal/core/ports/driving"
	"github.com/wayfind-labs/wayfind-cli/internal/logger"
)

// Ensure SelectionService implements the interface.
var _ driving.SelectionService = (*SelectionService)(nil)

// Zoom hints per tier, passed to the map controller's fly-to.
const (
	zoomTerritory  = 8
	zoomRegion     = 10
	zoomSubregion  = 11
	zoomLocality   = 13
	zoomSettlement = 14
)

// SelectionService dispatches the side effects of choosing a result:
// filter checkbox, map fly-to or boundary fit, recency record.
//
// Typed search and direct map clicks share this pipeline. A fixed
// cooling-down window after each dispatch suppresses the other path
// instead of ordering the two event streams; that trade-off keeps the
// pipeline lock-free at the cost of ignoring clicks for the window.
type SelectionService struct {
	mu             sync.Mutex
	mapController  driven.MapController
	filterForm     driven.FilterForm
	recent         driving.RecentService
	cooldown       time.Duration
	suppressedTill time.Time
	now            func() time.Time
}

// NewSelectionService creates the dispatcher.
// mapController, filterForm and recent are all optional (can be nil);
// missing collaborators skip their side effect.
func NewSelectionService(
	mapController driven.MapController,
	filterForm driven.FilterForm,
	recent driving.RecentService,
	cooldown time.Duration,
) *SelectionService {
	if cooldown <= 0 {
		cooldown = domain.DefaultCooldown
	}
	return &SelectionService{
		mapController: mapController,
		filterForm:    filterForm,
		recent:        recent,
		cooldown:      cooldown,
		now:           time.Now,
	}
}

// Select dispatches a selection. The suppression flag is raised
// before any collaborator runs so a concurrent map-click handler
// observing Suppressed cannot double-fire the pipeline.
func (s *SelectionService) Select(
	ctx context.Context, term string, entityType domain.EntityType, opts driving.SelectionOptions,
) error {
	if !entityType.IsValid() {
		return domain.ErrInvalidInput
	}

	dispatchID := uuid.NewString()
	logger.Section("Selection Dispatch")
	logger.Debug("Dispatch %s: term=%q type=%s recent=%t", dispatchID, term, entityType, opts.IsRecent)

	s.beginCooldown()

	if s.recent != nil && !opts.IsRecent {
		entity := domain.NewEntity(term, entityType, opts.Coordinates)
		s.recent.Record(ctx, term, entity)
	}

	if s.filterForm != nil {
		if err := s.filterForm.SetChecked(ctx, entityType.String(), term, true); err != nil {
			logger.Warn("Dispatch %s: filter update failed: %v", dispatchID, err)
		}
	}

	s.moveMap(ctx, dispatchID, term, entityType, opts)

	logger.Info("Dispatch %s complete, cooling down for %s", dispatchID, s.cooldown)
	return nil
}

// moveMap issues the tier-appropriate viewport command. Area tiers
// try a boundary fit first and fall back to fly-to when no boundary
// is known; point tiers fly straight to their coordinate.
func (s *SelectionService) moveMap(
	ctx context.Context, dispatchID, term string, entityType domain.EntityType, opts driving.SelectionOptions,
) {
	if s.mapController == nil {
		return
	}

	if !entityType.IsPoint() {
		fitted, err := s.mapController.FitToBoundary(ctx, term)
		if err != nil {
			logger.Warn("Dispatch %s: boundary fit failed: %v", dispatchID, err)
			return
		}
		if fitted {
			return
		}
		logger.Debug("Dispatch %s: no boundary for %q, falling back to fly-to", dispatchID, term)
	}

	if opts.Coordinates == nil {
		logger.Debug("Dispatch %s: no coordinates, viewport unchanged", dispatchID)
		return
	}
	if err := s.mapController.FlyTo(ctx, opts.Coordinates.Lat, opts.Coordinates.Lng, zoomHint(entityType)); err != nil {
		logger.Warn("Dispatch %s: fly-to failed: %v", dispatchID, err)
	}
}

// Suppressed reports whether the dispatcher is inside a cooling-down
// window.
func (s *SelectionService) Suppressed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now().Before(s.suppressedTill)
}

// SetClock replaces the time source; tests use it to step through the
// cooling-down window without sleeping.
func (s *SelectionService) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *SelectionService) beginCooldown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppressedTill = s.now().Add(s.cooldown)
}

func zoomHint(t domain.EntityType) int {
	switch t {
	case domain.EntityTerritory:
		return zoomTerritory
	case domain.EntityRegion:
		return zoomRegion
	case domain.EntitySubregion:
		return zoomSubregion
	case domain.EntitySettlement:
		return zoomSettlement
	default:
		return zoomLocality
	}
}
