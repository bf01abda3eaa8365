// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
)

// DebounceElapsed fires when the debounce interval after a keystroke
// expires. Seq identifies the keystroke generation; ticks carrying an
// old Seq are discarded.
type DebounceElapsed struct {
	Seq   int
	Query string
}

// SearchCompleted carries ranked results back to the model.
type SearchCompleted struct {
	Query   string
	Results []domain.RankedResult
}

// DataReady signals the entity dataset finished its first load.
type DataReady struct{}

// DataReloaded signals a wholesale dataset replacement.
type DataReloaded struct{}

// SelectionDispatched signals a result selection finished its side
// effects. Name is the display name of the chosen entity.
type SelectionDispatched struct {
	Name string
	Err  error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
