// Package bridge emits map and filter commands as JSON lines on a
// writer. A host embedding the engine reads the stream and applies the
// commands to its own map view and filter form.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/wayfind-labs/wayfind-cli/internal/core/ports/driven"
	"github.com/wayfind-labs/wayfind-cli/internal/logger"
)

// Ensure Bridge implements both driven ports.
var (
	_ driven.MapController = (*Bridge)(nil)
	_ driven.FilterForm    = (*Bridge)(nil)
)

// Command names on the wire.
const (
	cmdFlyTo       = "fly_to"
	cmdFitBoundary = "fit_boundary"
	cmdSetFilter   = "set_filter"
)

// command is one JSON line on the wire.
type command struct {
	Command string  `json:"command"`
	Lat     float64 `json:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty"`
	Zoom    int     `json:"zoom,omitempty"`
	Name    string  `json:"name,omitempty"`
	Filter  string  `json:"filter,omitempty"`
	Value   string  `json:"value,omitempty"`
	Checked bool    `json:"checked"`
}

// Bridge implements MapController and FilterForm over a line-oriented
// JSON stream. Writes are serialised so concurrent commands never
// interleave within a line.
type Bridge struct {
	mu         sync.Mutex
	w          io.Writer
	boundaries map[string]struct{}
}

// New creates a bridge writing to w. boundaries names the
// administrative areas the host can frame; FitToBoundary reports
// false for anything else without emitting a command.
func New(w io.Writer, boundaries []string) *Bridge {
	known := make(map[string]struct{}, len(boundaries))
	for _, name := range boundaries {
		known[strings.ToLower(name)] = struct{}{}
	}
	return &Bridge{w: w, boundaries: known}
}

// FlyTo emits a viewport move command.
func (b *Bridge) FlyTo(ctx context.Context, lat, lng float64, zoomHint int) error {
	return b.emit(ctx, command{
		Command: cmdFlyTo,
		Lat:     lat,
		Lng:     lng,
		Zoom:    zoomHint,
	})
}

// FitToBoundary emits a boundary-framing command for known boundaries.
func (b *Bridge) FitToBoundary(ctx context.Context, name string) (bool, error) {
	if _, ok := b.boundaries[strings.ToLower(name)]; !ok {
		logger.Debug("No boundary known for %q", name)
		return false, nil
	}

	if err := b.emit(ctx, command{Command: cmdFitBoundary, Name: name}); err != nil {
		return false, err
	}
	return true, nil
}

// SetChecked emits a filter checkbox command.
func (b *Bridge) SetChecked(ctx context.Context, entityType, value string, checked bool) error {
	return b.emit(ctx, command{
		Command: cmdSetFilter,
		Filter:  entityType,
		Value:   value,
		Checked: checked,
	})
}

func (b *Bridge) emit(ctx context.Context, cmd command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("failed to encode %s command: %w", cmd.Command, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.w.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to write %s command: %w", cmd.Command, err)
	}
	return nil
}
