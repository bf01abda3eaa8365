package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
	"github.com/wayfind-labs/wayfind-cli/internal/core/ports/driving"
)

// mockMapController implements driven.MapController for testing.
type mockMapController struct {
	flyTos   []mockFlyTo
	fits     []string
	fitKnown bool
	fitErr   error
	flyErr   error
}

type mockFlyTo struct {
	lat, lng float64
	zoom     int
}

func (m *mockMapController) FlyTo(_ context.Context, lat, lng float64, zoomHint int) error {
	if m.flyErr != nil {
		return m.flyErr
	}
	m.flyTos = append(m.flyTos, mockFlyTo{lat: lat, lng: lng, zoom: zoomHint})
	return nil
}

func (m *mockMapController) FitToBoundary(_ context.Context, name string) (bool, error) {
	if m.fitErr != nil {
		return false, m.fitErr
	}
	m.fits = append(m.fits, name)
	return m.fitKnown, nil
}

// mockFilterForm implements driven.FilterForm for testing.
type mockFilterForm struct {
	checked map[string]string
	err     error
}

func (m *mockFilterForm) SetChecked(_ context.Context, entityType, value string, checked bool) error {
	if m.err != nil {
		return m.err
	}
	if m.checked == nil {
		m.checked = make(map[string]string)
	}
	if checked {
		m.checked[entityType] = value
	}
	return nil
}

type dispatchFixture struct {
	svc    *SelectionService
	mapCtl *mockMapController
	form   *mockFilterForm
	recent *mockRecentService
	now    time.Time
}

func newDispatchFixture(t *testing.T) *dispatchFixture {
	t.Helper()
	f := &dispatchFixture{
		mapCtl: &mockMapController{},
		form:   &mockFilterForm{},
		recent: &mockRecentService{},
		now:    time.UnixMilli(1_700_000_000_000),
	}
	f.svc = NewSelectionService(f.mapCtl, f.form, f.recent, domain.DefaultCooldown)
	f.svc.SetClock(func() time.Time { return f.now })
	return f
}

// TestSelect_LocalityFliesToCoordinate tests the point-tier path
func TestSelect_LocalityFliesToCoordinate(t *testing.T) {
	f := newDispatchFixture(t)

	err := f.svc.Select(context.Background(), "Hebron", domain.EntityLocality, driving.SelectionOptions{
		Coordinates: &domain.Coordinates{Lat: 31.53, Lng: 35.09},
	})

	require.NoError(t, err)
	require.Len(t, f.mapCtl.flyTos, 1)
	assert.InDelta(t, 31.53, f.mapCtl.flyTos[0].lat, 0.001)
	assert.Equal(t, zoomLocality, f.mapCtl.flyTos[0].zoom)
	assert.Empty(t, f.mapCtl.fits)
}

// TestSelect_RegionFitsBoundary tests the area-tier path
func TestSelect_RegionFitsBoundary(t *testing.T) {
	f := newDispatchFixture(t)
	f.mapCtl.fitKnown = true

	err := f.svc.Select(context.Background(), "Hebron Hills", domain.EntityRegion, driving.SelectionOptions{
		Coordinates: &domain.Coordinates{Lat: 31.4, Lng: 35.1},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Hebron Hills"}, f.mapCtl.fits)
	// A known boundary means no fly-to fallback.
	assert.Empty(t, f.mapCtl.flyTos)
}

// TestSelect_UnknownBoundaryFallsBackToFlyTo tests the false return
func TestSelect_UnknownBoundaryFallsBackToFlyTo(t *testing.T) {
	f := newDispatchFixture(t)
	f.mapCtl.fitKnown = false

	err := f.svc.Select(context.Background(), "Jordan Valley", domain.EntityRegion, driving.SelectionOptions{
		Coordinates: &domain.Coordinates{Lat: 32.0, Lng: 35.5},
	})

	require.NoError(t, err)
	require.Len(t, f.mapCtl.flyTos, 1)
	assert.Equal(t, zoomRegion, f.mapCtl.flyTos[0].zoom)
}

// TestSelect_SetsFilterCheckbox tests the filter side effect
func TestSelect_SetsFilterCheckbox(t *testing.T) {
	f := newDispatchFixture(t)

	err := f.svc.Select(context.Background(), "Hebron", domain.EntityLocality, driving.SelectionOptions{})

	require.NoError(t, err)
	assert.Equal(t, "Hebron", f.form.checked["locality"])
}

// TestSelect_RecordsRecency tests the recency side effect and the
// isRecent exemption
func TestSelect_RecordsRecency(t *testing.T) {
	f := newDispatchFixture(t)

	require.NoError(t, f.svc.Select(context.Background(), "Hebron", domain.EntityLocality, driving.SelectionOptions{}))
	require.Len(t, f.recent.recorded, 1)
	assert.Equal(t, "Hebron", f.recent.recorded[0].Name)

	// Choosing an existing recent entry must not re-record it.
	require.NoError(t, f.svc.Select(context.Background(), "Hebron", domain.EntityLocality, driving.SelectionOptions{IsRecent: true}))
	assert.Len(t, f.recent.recorded, 1)
}

// TestSelect_CooldownSuppression tests the Idle -> Dispatching ->
// Cooling-down -> Idle windowing
func TestSelect_CooldownSuppression(t *testing.T) {
	f := newDispatchFixture(t)

	assert.False(t, f.svc.Suppressed())

	require.NoError(t, f.svc.Select(context.Background(), "Hebron", domain.EntityLocality, driving.SelectionOptions{}))
	assert.True(t, f.svc.Suppressed())

	// Still suppressed just inside the window.
	f.now = f.now.Add(domain.DefaultCooldown - time.Millisecond)
	assert.True(t, f.svc.Suppressed())

	// Clear once the window elapses.
	f.now = f.now.Add(2 * time.Millisecond)
	assert.False(t, f.svc.Suppressed())
}

// TestSelect_InvalidType tests input validation
func TestSelect_InvalidType(t *testing.T) {
	f := newDispatchFixture(t)

	err := f.svc.Select(context.Background(), "Hebron", "city", driving.SelectionOptions{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.recent.recorded)
}

// TestSelect_CollaboratorFailuresDegrade tests that side-effect
// errors never propagate
func TestSelect_CollaboratorFailuresDegrade(t *testing.T) {
	f := newDispatchFixture(t)
	f.form.err = errors.New("form gone")
	f.mapCtl.fitErr = errors.New("map gone")
	f.mapCtl.flyErr = errors.New("map gone")

	err := f.svc.Select(context.Background(), "Hebron", domain.EntityLocality, driving.SelectionOptions{
		Coordinates: &domain.Coordinates{Lat: 31.53, Lng: 35.09},
	})

	assert.NoError(t, err)
	// Recency still recorded despite downstream failures.
	assert.Len(t, f.recent.recorded, 1)
}

// TestSelect_NilCollaborators tests optional wiring
func TestSelect_NilCollaborators(t *testing.T) {
	svc := NewSelectionService(nil, nil, nil, 0)

	err := svc.Select(context.Background(), "Hebron", domain.EntityLocality, driving.SelectionOptions{})

	assert.NoError(t, err)
	assert.True(t, svc.Suppressed())
}
