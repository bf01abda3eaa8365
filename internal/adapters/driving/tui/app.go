package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wayfind-labs/wayfind-cli/internal/adapters/driving/tui/components/dropdown"
	"github.com/wayfind-labs/wayfind-cli/internal/adapters/driving/tui/components/input"
	"github.com/wayfind-labs/wayfind-cli/internal/adapters/driving/tui/components/status"
	"github.com/wayfind-labs/wayfind-cli/internal/adapters/driving/tui/keymap"
	"github.com/wayfind-labs/wayfind-cli/internal/adapters/driving/tui/messages"
	"github.com/wayfind-labs/wayfind-cli/internal/adapters/driving/tui/styles"
	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
	"github.com/wayfind-labs/wayfind-cli/internal/core/ports/driving"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// input is the search input component.
	input *input.SearchInput

	// dropdown is the suggestion list component.
	dropdown *dropdown.Dropdown

	// statusbar is the status bar component.
	statusbar *status.Bar

	// debounce is the pause required after a keystroke before a
	// search fires.
	debounce time.Duration

	// seq identifies the current keystroke generation. Debounce
	// ticks carrying an older seq are stale and discarded.
	seq int

	// lastQuery is the last query handed to the search service.
	lastQuery string

	// dataReady is set once the entity dataset has loaded.
	dataReady bool

	// dropdownOpen gates whether completed searches surface the
	// dropdown. Escape, an emptied input and a finished selection
	// close it; the next input edit with content reopens it.
	dropdownOpen bool

	// selecting is set while a selection dispatch is in flight, so a
	// second enter cannot double-fire the side effects.
	selecting bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, debounce time.Duration) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if debounce <= 0 {
		debounce = domain.DefaultDebounce
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:     ports,
		ctx:       context.Background(),
		styles:    s,
		keymap:    km,
		input:     input.NewSearchInput(s),
		dropdown:  dropdown.New(s),
		statusbar: status.NewBar(s, km),
		debounce:  debounce,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("wayfind - Place Search"),
		a.input.Init(),
		a.waitForReady(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.DebounceElapsed:
		// A newer keystroke superseded this tick.
		if msg.Seq != a.seq {
			return a, nil
		}
		a.lastQuery = msg.Query
		return a, a.performSearch(msg.Query)

	case messages.SearchCompleted:
		// Results for an input state the user has already left.
		if msg.Query != a.input.Value() {
			return a, nil
		}
		a.dropdown.Apply(msg.Results)
		if a.dropdownOpen {
			a.dropdown.Show()
			a.statusbar.SetState(status.StateResults)
			a.statusbar.SetResultCount(len(msg.Results))
		}
		return a, nil

	case messages.DataReady:
		a.dataReady = true
		a.statusbar.SetState(status.StateReady)
		return a, tea.Batch(a.refreshSearch(), a.waitForReload())

	case messages.DataReloaded:
		return a, tea.Batch(a.refreshSearch(), a.waitForReload())

	case messages.SelectionDispatched:
		a.selecting = false
		if msg.Err != nil {
			a.err = msg.Err
			a.statusbar.SetState(status.StateError)
			a.statusbar.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.input.SetValue(msg.Name)
		a.dropdown.Hide()
		a.dropdownOpen = false
		a.statusbar.SetState(status.StateSelected)
		a.statusbar.SetMessage(msg.Name)
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusbar.SetState(status.StateError)
		a.statusbar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink etc.) to the input.
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleKeyMsg processes keyboard input.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, a.keymap.Quit):
		return a, tea.Quit

	case keymap.Matches(keyStr, a.keymap.Clear):
		return a, a.clearInput()
	}

	// Navigation and selection act on a visible dropdown only. With
	// it hidden the same keys fall through to the input below, so
	// Home/End still move the cursor.
	if a.dropdown.Visible() {
		switch {
		case keymap.Matches(keyStr, a.keymap.Up):
			a.dropdown.MoveUp()
			return a, nil

		case keymap.Matches(keyStr, a.keymap.Down):
			a.dropdown.MoveDown()
			return a, nil

		case keymap.Matches(keyStr, a.keymap.First):
			a.dropdown.MoveFirst()
			return a, nil

		case keymap.Matches(keyStr, a.keymap.Last):
			a.dropdown.MoveLast()
			return a, nil

		case keymap.Matches(keyStr, a.keymap.Select):
			return a, a.selectHighlighted()
		}
	}

	// Everything else edits the input.
	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)

	if value := a.input.Value(); value != before {
		a.seq++
		if value == "" {
			a.dropdown.Hide()
			a.dropdownOpen = false
		} else {
			a.dropdownOpen = true
		}
		return a, tea.Batch(cmd, a.debounceTick(a.seq, value))
	}
	return a, cmd
}

// clearInput empties the input and hides the dropdown. The scheduled
// empty-query tick refreshes the cached default view so the next
// keystroke reopens onto fresh rows.
func (a *App) clearInput() tea.Cmd {
	a.input.SetValue("")
	a.dropdown.Hide()
	a.dropdownOpen = false
	a.err = nil
	a.statusbar.Clear()
	a.seq++
	return a.debounceTick(a.seq, "")
}

// selectHighlighted dispatches the highlighted result.
func (a *App) selectHighlighted() tea.Cmd {
	if a.selecting || !a.dropdown.Visible() {
		return nil
	}
	result := a.dropdown.SelectedResult()
	if result == nil {
		return nil
	}
	a.selecting = true
	return a.performSelect(*result)
}

// refreshSearch re-runs the last query after the dataset loads or
// reloads, so results reflect the fresh collection. With an empty
// input it builds the default view instead.
func (a *App) refreshSearch() tea.Cmd {
	query := a.input.Value()
	a.lastQuery = query
	return a.performSearch(query)
}

// debounceTick schedules a debounce expiry for keystroke generation seq.
func (a *App) debounceTick(seq int, query string) tea.Cmd {
	return tea.Tick(a.debounce, func(time.Time) tea.Msg {
		return messages.DebounceElapsed{Seq: seq, Query: query}
	})
}

// performSearch runs a search off the update loop.
func (a *App) performSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results := a.ports.Search.Search(a.ctx, query, domain.SearchOptions{
			IncludeRecent: true,
		})
		return messages.SearchCompleted{Query: query, Results: results}
	}
}

// performSelect dispatches a chosen result's side effects.
func (a *App) performSelect(result domain.RankedResult) tea.Cmd {
	return func() tea.Msg {
		err := a.ports.Selection.Select(a.ctx, result.Entity.Name, result.Entity.Type,
			driving.SelectionOptions{
				Coordinates: result.Entity.Coordinates,
				IsRecent:    result.IsRecent,
			})
		return messages.SelectionDispatched{Name: result.Entity.Name, Err: err}
	}
}

// waitForReady blocks until the dataset's first load completes.
func (a *App) waitForReady() tea.Cmd {
	return func() tea.Msg {
		<-a.ports.Search.Ready()
		return messages.DataReady{}
	}
}

// waitForReload blocks until the next wholesale dataset replacement.
func (a *App) waitForReload() tea.Cmd {
	return func() tea.Msg {
		<-a.ports.Search.Reloaded()
		return messages.DataReloaded{}
	}
}

// View implements tea.Model.
// It renders the application as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := a.styles.Title.Render("Wayfind")
	sections = append(sections, header, "")

	sections = append(sections, a.input.View(), "")

	if a.err != nil {
		sections = append(sections, a.styles.Error.Render("Error: "+a.err.Error()), "")
	}

	if a.dropdown.Visible() {
		sections = append(sections, a.dropdown.View())
	}

	sections = append(sections, "", a.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Query returns the current input text.
func (a *App) Query() string {
	return a.input.Value()
}

// Results returns the currently displayed results.
func (a *App) Results() []domain.RankedResult {
	return a.dropdown.Results()
}

// SelectedIndex returns the highlighted result index, or -1.
func (a *App) SelectedIndex() int {
	return a.dropdown.Selected()
}

// DropdownVisible returns whether the dropdown is currently shown.
func (a *App) DropdownVisible() bool {
	return a.dropdown.Visible()
}

// Seq returns the current keystroke generation.
func (a *App) Seq() int {
	return a.seq
}

// DataReady returns whether the dataset has loaded.
func (a *App) DataReady() bool {
	return a.dataReady
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.input.SetWidth(width)
	a.dropdown.SetDimensions(width, height-8)
	a.statusbar.SetWidth(width)
}
