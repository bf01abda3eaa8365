package dropdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
)

func ranked(name string, t domain.EntityType, recent bool) domain.RankedResult {
	return domain.RankedResult{
		Entity:   domain.NewEntity(name, t, nil),
		Score:    0.9,
		IsRecent: recent,
	}
}

func threeResults() []domain.RankedResult {
	return []domain.RankedResult{
		ranked("Hebron", domain.EntityLocality, false),
		ranked("Hebron Hills", domain.EntityRegion, false),
		ranked("Haifa", domain.EntityLocality, true),
	}
}

// TestDropdown_Apply tests that applying results rebuilds rows and
// clears the highlight.
func TestDropdown_Apply(t *testing.T) {
	d := New(nil)

	rebuilt := d.Apply(threeResults())
	assert.True(t, rebuilt)
	assert.Equal(t, 3, d.Count())
	assert.Equal(t, -1, d.Selected())
}

// TestDropdown_Apply_NoChange tests that an equivalent result set
// does not rebuild rows or disturb the highlight.
func TestDropdown_Apply_NoChange(t *testing.T) {
	d := New(nil)
	d.Apply(threeResults())
	d.MoveDown()
	require.Equal(t, 0, d.Selected())

	// Same rows, different scores: scores are not part of a row.
	again := threeResults()
	again[0].Score = 0.5

	rebuilt := d.Apply(again)
	assert.False(t, rebuilt)
	assert.Equal(t, 0, d.Selected(), "highlight should survive a no-op apply")
}

// TestDropdown_Apply_Changed tests rebuild triggers.
func TestDropdown_Apply_Changed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]domain.RankedResult) []domain.RankedResult
	}{
		{
			name: "row count changed",
			mutate: func(r []domain.RankedResult) []domain.RankedResult {
				return r[:2]
			},
		},
		{
			name: "name changed",
			mutate: func(r []domain.RankedResult) []domain.RankedResult {
				r[0] = ranked("Hevron", domain.EntityLocality, false)
				return r
			},
		},
		{
			name: "type changed",
			mutate: func(r []domain.RankedResult) []domain.RankedResult {
				r[0] = ranked("Hebron", domain.EntitySettlement, false)
				return r
			},
		},
		{
			name: "recent marker changed",
			mutate: func(r []domain.RankedResult) []domain.RankedResult {
				r[2] = ranked("Haifa", domain.EntityLocality, false)
				return r
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(nil)
			d.Apply(threeResults())
			d.MoveDown()

			rebuilt := d.Apply(tt.mutate(threeResults()))
			assert.True(t, rebuilt)
			assert.Equal(t, -1, d.Selected(), "rebuild should clear the highlight")
		})
	}
}

// TestDropdown_Wraparound tests circular navigation in both directions.
func TestDropdown_Wraparound(t *testing.T) {
	d := New(nil)
	d.Apply(threeResults())

	// Down from no highlight lands on the first row.
	d.MoveDown()
	assert.Equal(t, 0, d.Selected())

	d.MoveDown()
	d.MoveDown()
	assert.Equal(t, 2, d.Selected())

	// Down from the last row wraps to the first.
	d.MoveDown()
	assert.Equal(t, 0, d.Selected())

	// Up from the first row wraps to the last.
	d.MoveUp()
	assert.Equal(t, 2, d.Selected())
}

// TestDropdown_MoveUp_NoHighlight tests that up from no highlight
// starts at the last row.
func TestDropdown_MoveUp_NoHighlight(t *testing.T) {
	d := New(nil)
	d.Apply(threeResults())

	d.MoveUp()
	assert.Equal(t, 2, d.Selected())
}

// TestDropdown_FirstLast tests the home/end jumps.
func TestDropdown_FirstLast(t *testing.T) {
	d := New(nil)
	d.Apply(threeResults())
	d.MoveDown()
	d.MoveDown()

	d.MoveFirst()
	assert.Equal(t, 0, d.Selected())

	d.MoveLast()
	assert.Equal(t, 2, d.Selected())
}

// TestDropdown_Empty tests navigation with no rows.
func TestDropdown_Empty(t *testing.T) {
	d := New(nil)

	d.MoveUp()
	d.MoveDown()
	d.MoveFirst()
	d.MoveLast()

	assert.Equal(t, -1, d.Selected())
	assert.Nil(t, d.SelectedResult())
	assert.True(t, d.IsEmpty())
}

// TestDropdown_Hide tests that hiding clears the highlight.
func TestDropdown_Hide(t *testing.T) {
	d := New(nil)
	d.Apply(threeResults())
	d.Show()
	d.MoveDown()
	require.Equal(t, 0, d.Selected())

	d.Hide()
	assert.False(t, d.Visible())
	assert.Equal(t, -1, d.Selected())
}

// TestDropdown_SelectedResult tests retrieval of the highlighted row.
func TestDropdown_SelectedResult(t *testing.T) {
	d := New(nil)
	d.Apply(threeResults())

	assert.Nil(t, d.SelectedResult())

	d.MoveDown()
	d.MoveDown()
	result := d.SelectedResult()
	require.NotNil(t, result)
	assert.Equal(t, "Hebron Hills", result.Entity.Name)
}

// TestDropdown_View tests rendering of rows and the empty placeholder.
func TestDropdown_View(t *testing.T) {
	d := New(nil)
	d.Show()

	assert.Contains(t, d.View(), "No matches")

	d.Apply(threeResults())
	view := d.View()
	assert.Contains(t, view, "Hebron")
	assert.Contains(t, view, "Haifa")
	assert.Contains(t, view, "region")

	d.Hide()
	assert.Empty(t, d.View())
}

// TestDropdown_View_Truncation tests long names are truncated to the width.
func TestDropdown_View_Truncation(t *testing.T) {
	d := New(nil)
	d.SetDimensions(30, 10)
	d.Apply([]domain.RankedResult{
		ranked(strings.Repeat("a", 60), domain.EntityLocality, false),
	})

	d.Show()
	assert.Contains(t, d.View(), "...")
}
