// Package tui provides the interactive place search interface for wayfind.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/wayfind-labs/wayfind-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search ranks entities against partial input.
	Search driving.SearchService

	// Recent maintains the recent-search list.
	Recent driving.RecentService

	// Selection dispatches the side effects of a chosen result.
	Selection driving.SelectionService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	search driving.SearchService,
	recent driving.RecentService,
	selection driving.SelectionService,
) *Ports {
	return &Ports{
		Search:    search,
		Recent:    recent,
		Selection: selection,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Recent == nil {
		return ErrMissingRecentService
	}
	if p.Selection == nil {
		return ErrMissingSelectionService
	}
	return nil
}
