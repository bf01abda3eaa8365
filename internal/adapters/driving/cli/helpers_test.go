package cli

import (
	"context"
	"time"

	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
	"github.com/wayfind-labs/wayfind-cli/internal/core/ports/driving"
)

// mockSearchService is a test double for driving.SearchService.
type mockSearchService struct {
	results []domain.RankedResult
	queries []string
}

func (m *mockSearchService) Search(_ context.Context, query string, _ domain.SearchOptions) []domain.RankedResult {
	m.queries = append(m.queries, query)
	return m.results
}

func (m *mockSearchService) Ready() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func (m *mockSearchService) Reloaded() <-chan struct{} {
	return make(chan struct{})
}

// mockRecentService is a test double for driving.RecentService.
type mockRecentService struct {
	entries []domain.RecentSearch
	cleared bool
	removed []int
}

func (m *mockRecentService) Record(_ context.Context, term string, entity domain.Entity) {
	m.entries = append([]domain.RecentSearch{{
		Term:      term,
		Name:      entity.Name,
		Type:      entity.Type,
		Timestamp: time.Now().UnixMilli(),
	}}, m.entries...)
}

func (m *mockRecentService) List(context.Context) []domain.RecentSearch {
	return m.entries
}

func (m *mockRecentService) Remove(_ context.Context, index int) {
	m.removed = append(m.removed, index)
}

func (m *mockRecentService) Clear(context.Context) {
	m.cleared = true
	m.entries = nil
}

// mockSelectionService is a test double for driving.SelectionService.
type mockSelectionService struct {
	selected []string
}

func (m *mockSelectionService) Select(_ context.Context, term string, _ domain.EntityType, _ driving.SelectionOptions) error {
	m.selected = append(m.selected, term)
	return nil
}

func (m *mockSelectionService) Suppressed() bool { return false }

// setupTestServices installs mock services and returns a cleanup that
// restores the previous ones.
func setupTestServices() func() {
	oldSearch := searchService
	oldRecent := recentService
	oldSelection := selectionService

	searchService = &mockSearchService{
		results: []domain.RankedResult{
			{Entity: domain.NewEntity("Hebron", domain.EntityLocality, &domain.Coordinates{Lat: 31.5326, Lng: 35.0998}), Score: 1.0},
			{Entity: domain.NewEntity("Hebron Hills", domain.EntityRegion, nil), Score: 0.9},
		},
	}
	recentService = &mockRecentService{
		entries: []domain.RecentSearch{
			{Term: "heb", Name: "Hebron", Type: domain.EntityLocality, Timestamp: 1700000000000},
		},
	}
	selectionService = &mockSelectionService{}

	return func() {
		searchService = oldSearch
		recentService = oldRecent
		selectionService = oldSelection
	}
}
