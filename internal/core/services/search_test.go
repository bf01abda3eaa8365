package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
)

// --- Mock implementations ---

// mockEntitySource implements driven.EntitySource for testing.
type mockEntitySource struct {
	collections domain.Collections
	err         error
	ready       chan struct{}
	reloaded    chan struct{}
}

func newMockEntitySource(c domain.Collections) *mockEntitySource {
	ready := make(chan struct{})
	close(ready)
	return &mockEntitySource{
		collections: c,
		ready:       ready,
		reloaded:    make(chan struct{}),
	}
}

func newUnreadyEntitySource() *mockEntitySource {
	return &mockEntitySource{
		err:      domain.ErrDataNotReady,
		ready:    make(chan struct{}),
		reloaded: make(chan struct{}),
	}
}

func (m *mockEntitySource) Collections(_ context.Context) (domain.Collections, error) {
	if m.err != nil {
		return domain.Collections{}, m.err
	}
	return m.collections, nil
}

func (m *mockEntitySource) Ready() <-chan struct{}    { return m.ready }
func (m *mockEntitySource) Reloaded() <-chan struct{} { return m.reloaded }
func (m *mockEntitySource) Close() error              { return nil }

// mockRecentService implements driving.RecentService for testing.
type mockRecentService struct {
	entries  []domain.RecentSearch
	recorded []domain.Entity
}

func (m *mockRecentService) Record(_ context.Context, _ string, entity domain.Entity) {
	m.recorded = append(m.recorded, entity)
}

func (m *mockRecentService) List(_ context.Context) []domain.RecentSearch { return m.entries }
func (m *mockRecentService) Remove(_ context.Context, _ int)              {}
func (m *mockRecentService) Clear(_ context.Context)                      {}

func testCollections() domain.Collections {
	return domain.Collections{
		Territories: []domain.Entity{
			domain.NewEntity("West Bank", domain.EntityTerritory, nil),
		},
		Regions: []domain.Entity{
			domain.NewEntity("Hebron Hills", domain.EntityRegion, &domain.Coordinates{Lat: 31.4, Lng: 35.1}),
			domain.NewEntity("Jordan Valley", domain.EntityRegion, &domain.Coordinates{Lat: 32.0, Lng: 35.5}),
		},
		Subregions: []domain.Entity{
			domain.NewEntity("South Hebron", domain.EntitySubregion, &domain.Coordinates{Lat: 31.3, Lng: 35.0}),
		},
		Localities: []domain.Entity{
			domain.NewEntity("Hebron", domain.EntityLocality, &domain.Coordinates{Lat: 31.53, Lng: 35.09}),
			domain.NewEntity("Nablus", domain.EntityLocality, &domain.Coordinates{Lat: 32.22, Lng: 35.26}),
		},
		Settlements: []domain.Entity{
			domain.NewEntity("Kiryat Arba", domain.EntitySettlement, &domain.Coordinates{Lat: 31.52, Lng: 35.12}),
		},
	}
}

func newTestSearchService(c domain.Collections, recent *mockRecentService) *SearchService {
	var rs *mockRecentService
	if recent != nil {
		rs = recent
	}
	if rs == nil {
		return NewSearchService(newMockEntitySource(c), nil, nil, domain.DefaultRankingConfig())
	}
	return NewSearchService(newMockEntitySource(c), rs, nil, domain.DefaultRankingConfig())
}

// TestSearch_ExactBeatsPrefix tests the Hebron scenario: the exact
// match ranks above the prefix match
func TestSearch_ExactBeatsPrefix(t *testing.T) {
	svc := newTestSearchService(testCollections(), nil)

	results := svc.Search(context.Background(), "Hebron", domain.SearchOptions{})

	require.NotEmpty(t, results)
	assert.Equal(t, "Hebron", results[0].Entity.Name)
	assert.InDelta(t, 1.0, results[0].Score, 0.001)

	require.GreaterOrEqual(t, len(results), 2)
	assert.Equal(t, "Hebron Hills", results[1].Entity.Name)
	assert.InDelta(t, 0.9, results[1].Score, 0.001)
}

// TestSearch_EmptyQueryDefaultView tests tier order and caps
func TestSearch_EmptyQueryDefaultView(t *testing.T) {
	c := domain.Collections{}
	for i := 0; i < 5; i++ {
		c.Regions = append(c.Regions, domain.NewEntity(fmt.Sprintf("Region %d", i), domain.EntityRegion, nil))
	}
	for i := 0; i < 10; i++ {
		c.Localities = append(c.Localities, domain.NewEntity(fmt.Sprintf("Locality %d", i), domain.EntityLocality, nil))
	}
	for i := 0; i < 2; i++ {
		c.Settlements = append(c.Settlements, domain.NewEntity(fmt.Sprintf("Settlement %d", i), domain.EntitySettlement, nil))
	}

	svc := newTestSearchService(c, nil)
	results := svc.Search(context.Background(), "", domain.SearchOptions{})

	// 3 regions + 0 subregions + 5 localities + 2 settlements.
	require.Len(t, results, 10)
	for i := 0; i < 3; i++ {
		assert.Equal(t, domain.EntityRegion, results[i].Entity.Type)
	}
	for i := 3; i < 8; i++ {
		assert.Equal(t, domain.EntityLocality, results[i].Entity.Type)
	}
	for i := 8; i < 10; i++ {
		assert.Equal(t, domain.EntitySettlement, results[i].Entity.Type)
	}
}

// TestSearch_DefaultViewExcludesTerritories tests that territories
// appear only under explicit search
func TestSearch_DefaultViewExcludesTerritories(t *testing.T) {
	svc := newTestSearchService(testCollections(), nil)

	for _, r := range svc.Search(context.Background(), "", domain.SearchOptions{}) {
		assert.NotEqual(t, domain.EntityTerritory, r.Entity.Type)
	}

	results := svc.Search(context.Background(), "West Bank", domain.SearchOptions{})
	require.NotEmpty(t, results)
	assert.Equal(t, domain.EntityTerritory, results[0].Entity.Type)
}

// TestSearch_DefaultViewMergesRecents tests recents at the front
func TestSearch_DefaultViewMergesRecents(t *testing.T) {
	recent := &mockRecentService{entries: []domain.RecentSearch{
		{Term: "heb", Name: "Hebron", Type: domain.EntityLocality, Timestamp: 1},
		{Term: "nab", Name: "Nablus", Type: domain.EntityLocality, Timestamp: 2},
	}}
	svc := newTestSearchService(testCollections(), recent)

	results := svc.Search(context.Background(), "", domain.SearchOptions{IncludeRecent: true})

	require.GreaterOrEqual(t, len(results), 2)
	assert.True(t, results[0].IsRecent)
	assert.Equal(t, "Hebron", results[0].Entity.Name)
	// Resolved against the dataset, so coordinates survive.
	assert.True(t, results[0].Entity.HasCoordinates())
	assert.True(t, results[1].IsRecent)

	// Without the opt-in, no recents are merged.
	for _, r := range svc.Search(context.Background(), "", domain.SearchOptions{}) {
		assert.False(t, r.IsRecent)
	}
}

// TestSearch_AdminCombinedCap tests that at most 3 region+subregion
// results surface for any query
func TestSearch_AdminCombinedCap(t *testing.T) {
	c := domain.Collections{}
	for i := 0; i < 4; i++ {
		c.Regions = append(c.Regions, domain.NewEntity(fmt.Sprintf("Karmel Region %d", i), domain.EntityRegion, nil))
	}
	for i := 0; i < 4; i++ {
		c.Subregions = append(c.Subregions, domain.NewEntity(fmt.Sprintf("Karmel Subregion %d", i), domain.EntitySubregion, nil))
	}
	for i := 0; i < 6; i++ {
		c.Localities = append(c.Localities, domain.NewEntity(fmt.Sprintf("Karmel Town %d", i), domain.EntityLocality, nil))
	}

	svc := newTestSearchService(c, nil)
	results := svc.Search(context.Background(), "Karmel", domain.SearchOptions{})

	admin := 0
	localities := 0
	for _, r := range results {
		if r.Entity.Type.IsAdministrative() {
			admin++
		}
		if r.Entity.Type == domain.EntityLocality {
			localities++
		}
	}
	assert.LessOrEqual(t, admin, 3)
	// Localities are not capped by the admin rule.
	assert.Equal(t, 6, localities)
}

// TestSearch_TieBreakSinksPointTiers tests that near-tied localities
// rank below administrative matches
func TestSearch_TieBreakSinksPointTiers(t *testing.T) {
	c := domain.Collections{
		Regions: []domain.Entity{
			domain.NewEntity("Galil Region", domain.EntityRegion, nil),
		},
		Localities: []domain.Entity{
			domain.NewEntity("Galil Town", domain.EntityLocality, nil),
		},
	}

	svc := newTestSearchService(c, nil)
	results := svc.Search(context.Background(), "Galil", domain.SearchOptions{})

	// Both are prefix matches at 0.9, within the 0.1 delta; the
	// region outranks the locality.
	require.Len(t, results, 2)
	assert.Equal(t, domain.EntityRegion, results[0].Entity.Type)
	assert.Equal(t, domain.EntityLocality, results[1].Entity.Type)
}

// TestSearch_AlphabeticalFinalTieBreak tests name ordering for
// same-tier equal scores
func TestSearch_AlphabeticalFinalTieBreak(t *testing.T) {
	c := domain.Collections{
		Localities: []domain.Entity{
			domain.NewEntity("Bet Omar", domain.EntityLocality, nil),
			domain.NewEntity("Bet Awwa", domain.EntityLocality, nil),
		},
	}

	svc := newTestSearchService(c, nil)
	results := svc.Search(context.Background(), "Bet", domain.SearchOptions{})

	require.Len(t, results, 2)
	assert.Equal(t, "Bet Awwa", results[0].Entity.Name)
	assert.Equal(t, "Bet Omar", results[1].Entity.Name)
}

// TestSearch_ThresholdFiltersWeakMatches tests the retention cut
func TestSearch_ThresholdFiltersWeakMatches(t *testing.T) {
	svc := newTestSearchService(testCollections(), nil)

	results := svc.Search(context.Background(), "zzqq", domain.SearchOptions{})

	assert.Empty(t, results)
}

// TestSearch_LimitTruncation tests the global cap and its override
func TestSearch_LimitTruncation(t *testing.T) {
	c := domain.Collections{}
	for i := 0; i < 80; i++ {
		c.Localities = append(c.Localities, domain.NewEntity(fmt.Sprintf("Haven %02d", i), domain.EntityLocality, nil))
	}

	svc := newTestSearchService(c, nil)

	results := svc.Search(context.Background(), "Haven", domain.SearchOptions{})
	assert.Len(t, results, 50)

	results = svc.Search(context.Background(), "Haven", domain.SearchOptions{Limit: 80})
	assert.Len(t, results, 80)
}

// TestSearch_DataNotReady tests the degraded pre-load behaviour
func TestSearch_DataNotReady(t *testing.T) {
	svc := NewSearchService(newUnreadyEntitySource(), nil, nil, domain.DefaultRankingConfig())

	results := svc.Search(context.Background(), "Hebron", domain.SearchOptions{})
	assert.NotNil(t, results)
	assert.Empty(t, results)

	results = svc.Search(context.Background(), "", domain.SearchOptions{})
	assert.Empty(t, results)

	select {
	case <-svc.Ready():
		t.Fatal("ready must not fire before data arrives")
	default:
	}
}

// TestSearch_WhitespaceQueryIsDefaultView tests trimming
func TestSearch_WhitespaceQueryIsDefaultView(t *testing.T) {
	svc := newTestSearchService(testCollections(), nil)

	trimmed := svc.Search(context.Background(), "   ", domain.SearchOptions{})
	plain := svc.Search(context.Background(), "", domain.SearchOptions{})

	assert.Equal(t, plain, trimmed)
}
