// Package dropdown provides the suggestion dropdown for the TUI.
//
// The dropdown separates row content from row decoration. Row text is
// rebuilt only when Apply detects a material change (count, name,
// type or recent marker); moving the highlight restyles the cached
// rows without rebuilding them.
package dropdown

import (
	"fmt"
	"strings"

	"github.com/wayfind-labs/wayfind-cli/internal/adapters/driving/tui/styles"
	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
)

// noHighlight is the selected index while no row is highlighted.
const noHighlight = -1

// Dropdown displays ranked results in a navigable list.
type Dropdown struct {
	results  []domain.RankedResult
	rows     []string
	selected int
	visible  bool
	styles   *styles.Styles
	width    int
	height   int
}

// New creates a dropdown component.
func New(s *styles.Styles) *Dropdown {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Dropdown{
		selected: noHighlight,
		styles:   s,
		width:    80,
		height:   12,
	}
}

// Apply replaces the result set, rebuilding row content only when it
// materially differs from what is already displayed. It reports
// whether a rebuild happened. A rebuild clears the highlight.
func (d *Dropdown) Apply(results []domain.RankedResult) bool {
	if sameRows(d.results, results) {
		d.results = results
		return false
	}

	d.results = results
	d.rows = make([]string, len(results))
	for i := range results {
		d.rows[i] = d.renderRow(&results[i])
	}
	d.selected = noHighlight
	return true
}

// sameRows reports whether the two result sets render identical rows.
func sameRows(a, b []domain.RankedResult) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].SameRow(b[i]) {
			return false
		}
	}
	return true
}

// renderRow builds the undecorated text for one row.
func (d *Dropdown) renderRow(r *domain.RankedResult) string {
	marker := "  "
	if r.IsRecent {
		marker = "⟳ "
	}

	name := r.Entity.Name
	maxNameLen := d.width - 24
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	detail := r.Entity.Type.String()
	if parent := r.Entity.ParentLabel(); parent != "" {
		detail = fmt.Sprintf("%s, %s", detail, parent)
	}

	return fmt.Sprintf("%s%-*s  %s", marker, maxNameLen, name, detail)
}

// View renders the dropdown, decorating the cached rows.
func (d *Dropdown) View() string {
	if !d.visible {
		return ""
	}

	if len(d.rows) == 0 {
		return d.styles.Muted.Render("  No matches")
	}

	lines := make([]string, 0, len(d.rows))
	for i, row := range d.rows {
		switch {
		case i == d.selected:
			lines = append(lines, d.styles.Selected.Render("> "+row))
		case d.results[i].IsRecent:
			lines = append(lines, d.styles.Recent.Render("  "+row))
		default:
			lines = append(lines, d.styles.Normal.Render("  "+row))
		}
	}

	return strings.Join(lines, "\n")
}

// Show makes the dropdown visible.
func (d *Dropdown) Show() {
	d.visible = true
}

// Hide hides the dropdown and clears the highlight.
func (d *Dropdown) Hide() {
	d.visible = false
	d.selected = noHighlight
}

// Visible returns whether the dropdown is shown.
func (d *Dropdown) Visible() bool {
	return d.visible
}

// MoveUp moves the highlight up, wrapping to the last row from the
// top. With no highlight yet it starts at the last row.
func (d *Dropdown) MoveUp() {
	if len(d.results) == 0 {
		return
	}
	if d.selected <= 0 {
		d.selected = len(d.results) - 1
		return
	}
	d.selected--
}

// MoveDown moves the highlight down, wrapping to the first row from
// the bottom. With no highlight yet it starts at the first row.
func (d *Dropdown) MoveDown() {
	if len(d.results) == 0 {
		return
	}
	if d.selected == noHighlight || d.selected == len(d.results)-1 {
		d.selected = 0
		return
	}
	d.selected++
}

// MoveFirst jumps the highlight to the first row.
func (d *Dropdown) MoveFirst() {
	if len(d.results) == 0 {
		return
	}
	d.selected = 0
}

// MoveLast jumps the highlight to the last row.
func (d *Dropdown) MoveLast() {
	if len(d.results) == 0 {
		return
	}
	d.selected = len(d.results) - 1
}

// Selected returns the highlighted index, or -1 when nothing is
// highlighted.
func (d *Dropdown) Selected() int {
	return d.selected
}

// SelectedResult returns the highlighted result, or nil when nothing
// is highlighted.
func (d *Dropdown) SelectedResult() *domain.RankedResult {
	if d.selected < 0 || d.selected >= len(d.results) {
		return nil
	}
	return &d.results[d.selected]
}

// Results returns the current results.
func (d *Dropdown) Results() []domain.RankedResult {
	return d.results
}

// Count returns the number of rows.
func (d *Dropdown) Count() int {
	return len(d.results)
}

// IsEmpty returns whether the dropdown has no rows.
func (d *Dropdown) IsEmpty() bool {
	return len(d.results) == 0
}

// SetDimensions sets the component dimensions. A width change
// invalidates the cached rows.
func (d *Dropdown) SetDimensions(width, height int) {
	if width != d.width {
		d.width = width
		d.rebuild()
	}
	d.height = height
}

func (d *Dropdown) rebuild() {
	for i := range d.results {
		d.rows[i] = d.renderRow(&d.results[i])
	}
}

// Width returns the current width.
func (d *Dropdown) Width() int {
	return d.width
}

// Height returns the current height.
func (d *Dropdown) Height() int {
	return d.height
}
