package logic

import (
	"fmt"
	"sort"
	"strings"

	"nobsrom/internal/domain"
	"nobsrom/internal/input"
	"nobsrom/internal/launch"
)

// Mode is the current UI mode
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
	ModeLaunching
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeLaunching:
		return "launching"
	default:
		return "browse"
	}
}

// Panel identifies one of the two navigable lists
type Panel int

const (
	PanelSystems Panel = iota
	PanelGames
)

// RowKind distinguishes the rows of the systems panel. Favorites and All
// are virtual rows shown before the configured systems.
type RowKind int

const (
	RowFavorites RowKind = iota
	RowAll
	RowSystem
)

// SystemRow is one entry of the systems panel
type SystemRow struct {
	Kind   RowKind
	System domain.System // valid when Kind == RowSystem
}

// Label returns the display name of the row
func (r SystemRow) Label() string {
	switch r.Kind {
	case RowFavorites:
		return "Favorites"
	case RowAll:
		return "All"
	default:
		return r.System.Name
	}
}

// Catalog is the read side of the game store the machine navigates
type Catalog interface {
	GamesFor(systemID string) []domain.Game
	All() []domain.Game
	Get(id string) (domain.Game, bool)
}

// Favorites is the persistence collaborator for the favorite set
type Favorites interface {
	Toggle(id string) (bool, error)
	Contains(id string) bool
	IDs() []string
}

// Effect is a side effect requested by the state machine. The machine
// itself never spawns processes or quits; it only asks the owner to.
type Effect interface {
	Type() string
}

// LaunchEffect requests launching a game with its owning system
type LaunchEffect struct {
	System domain.System
	Game   domain.Game
}

func (LaunchEffect) Type() string { return "launch" }

// QuitEffect requests session termination
type QuitEffect struct{}

func (QuitEffect) Type() string { return "quit" }

// ShowHelpEffect requests opening the help pager
type ShowHelpEffect struct{}

func (ShowHelpEffect) Type() string { return "show_help" }

// Snapshot is the read-only UI state handed to the renderer after each tick
type Snapshot struct {
	Mode        Mode
	Panel       Panel
	SystemIndex int
	GameIndex   int
	Query       string
	LastError   string
	Rows        []SystemRow
	Games       []domain.Game
	View        FilteredView
}

// Machine is the navigation state machine. It consumes abstract input
// events and owns all mutable UI state: mode, panel focus, selections, the
// search query and the filtered view. Every (mode, event) combination has a
// defined effect; anything unmatched is a deliberate no-op, so an
// unexpected event class can never fail the session.
type Machine struct {
	catalog   Catalog
	favorites Favorites

	systems     []domain.System
	systemsByID map[string]domain.System

	mode        Mode
	panel       Panel
	systemIndex int
	gameIndex   int
	query       string
	lastError   string

	games []domain.Game // unfiltered list for the current systems row
	view  FilteredView

	preSearchIndex int // games selection to restore when search is cancelled
}

// NewMachine creates a machine in Browse mode with the Systems panel
// focused and both selections at the top.
func NewMachine(systems []domain.System, catalog Catalog, favorites Favorites) *Machine {
	byID := make(map[string]domain.System, len(systems))
	for _, sys := range systems {
		byID[sys.ID] = sys
	}

	m := &Machine{
		catalog:     catalog,
		favorites:   favorites,
		systems:     systems,
		systemsByID: byID,
	}
	m.reloadGames()
	return m
}

// Mode returns the current UI mode
func (m *Machine) Mode() Mode {
	return m.mode
}

// Searching reports whether the search overlay is open
func (m *Machine) Searching() bool {
	return m.mode == ModeSearch
}

// Rows returns the systems panel rows: Favorites, All, then each system
func (m *Machine) Rows() []SystemRow {
	rows := make([]SystemRow, 0, len(m.systems)+2)
	rows = append(rows, SystemRow{Kind: RowFavorites}, SystemRow{Kind: RowAll})
	for _, sys := range m.systems {
		rows = append(rows, SystemRow{Kind: RowSystem, System: sys})
	}
	return rows
}

func (m *Machine) currentRow() SystemRow {
	rows := m.Rows()
	return rows[clampIndex(m.systemIndex, len(rows))]
}

// SelectedGame returns the game under the cursor in the filtered view
func (m *Machine) SelectedGame() (domain.Game, bool) {
	if m.view.Empty() {
		return domain.Game{}, false
	}
	idx := m.view.Indices[clampIndex(m.gameIndex, m.view.Len())]
	return m.games[idx], true
}

// Snapshot returns the read-only state for the renderer
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Mode:        m.mode,
		Panel:       m.panel,
		SystemIndex: m.systemIndex,
		GameIndex:   m.gameIndex,
		Query:       m.query,
		LastError:   m.lastError,
		Rows:        m.Rows(),
		Games:       m.games,
		View:        m.view,
	}
}

// Apply feeds one event through the transition table
func (m *Machine) Apply(ev input.Event) []Effect {
	switch m.mode {
	case ModeLaunching:
		// Everything is refused until the launch outcome arrives,
		// including Quit — the child owns the terminal.
		return nil
	case ModeSearch:
		return m.applySearch(ev)
	default:
		return m.applyBrowse(ev)
	}
}

func (m *Machine) applyBrowse(ev input.Event) []Effect {
	switch ev.(type) {
	case input.MoveUpEvent:
		m.moveSelection(-1)
	case input.MoveDownEvent:
		m.moveSelection(1)
	case input.MovePanelLeftEvent:
		m.panel = PanelSystems
	case input.MovePanelRightEvent:
		m.panel = PanelGames
	case input.ConfirmEvent:
		if m.panel == PanelSystems {
			m.panel = PanelGames
			return nil
		}
		return m.requestLaunch()
	case input.CancelEvent:
		if m.panel == PanelGames {
			m.panel = PanelSystems
		}
	case input.ToggleFavoriteEvent:
		m.toggleFavorite()
	case input.StartSearchEvent:
		m.mode = ModeSearch
		m.preSearchIndex = m.gameIndex
		m.query = ""
		m.view = Filter(m.games, "")
		m.gameIndex = 0
	case input.ShowHelpEvent:
		return []Effect{ShowHelpEffect{}}
	case input.QuitEvent:
		return []Effect{QuitEffect{}}
	}
	return nil
}

func (m *Machine) applySearch(ev input.Event) []Effect {
	switch ev := ev.(type) {
	case input.TypeCharEvent:
		m.query += string(ev.Char)
		m.refilter()
	case input.BackspaceEvent:
		if m.query != "" {
			runes := []rune(m.query)
			m.query = string(runes[:len(runes)-1])
			m.refilter()
		}
	case input.ConfirmEvent:
		// Keep the filtered selection: exit the overlay and, if a game is
		// under the cursor, launch it right away.
		_, ok := m.SelectedGame()
		m.exitSearch(ok)
		if ok {
			m.panel = PanelGames
			return m.requestLaunch()
		}
	case input.CancelEvent:
		m.exitSearch(false)
	case input.QuitEvent:
		return []Effect{QuitEffect{}}
	}
	// Directional and favorite events are suppressed while typing.
	return nil
}

// exitSearch returns to Browse, discarding the query so Browse always
// reflects the unfiltered list. With keepSelection the cursor follows the
// game that was selected in the filtered view; otherwise it returns to
// where it was before the search started.
func (m *Machine) exitSearch(keepSelection bool) {
	fullIndex := m.preSearchIndex
	if keepSelection && !m.view.Empty() {
		fullIndex = m.view.Indices[clampIndex(m.gameIndex, m.view.Len())]
	}

	m.mode = ModeBrowse
	m.query = ""
	m.view = Filter(m.games, "")
	m.gameIndex = clampIndex(fullIndex, m.view.Len())
}

func (m *Machine) refilter() {
	m.view = Filter(m.games, m.query)
	m.gameIndex = clampIndex(m.gameIndex, m.view.Len())
}

// moveSelection moves the focused panel's cursor, clamped, no wraparound
func (m *Machine) moveSelection(delta int) {
	if m.panel == PanelSystems {
		rows := len(m.Rows())
		next := clampIndex(m.systemIndex+delta, rows)
		if next != m.systemIndex {
			m.systemIndex = next
			m.gameIndex = 0
			m.reloadGames()
		}
		return
	}

	m.gameIndex = clampIndex(m.gameIndex+delta, m.view.Len())
}

func (m *Machine) requestLaunch() []Effect {
	game, ok := m.SelectedGame()
	if !ok {
		return nil
	}

	sys, ok := m.systemsByID[game.SystemID]
	if !ok {
		// A favorite can outlive its system's config entry.
		m.lastError = fmt.Sprintf("no system configured for %q", game.Name)
		return nil
	}

	m.mode = ModeLaunching
	m.lastError = ""
	return []Effect{LaunchEffect{System: sys, Game: game}}
}

func (m *Machine) toggleFavorite() {
	if m.panel != PanelGames {
		return
	}
	game, ok := m.SelectedGame()
	if !ok {
		return
	}

	if _, err := m.favorites.Toggle(game.ID); err != nil {
		m.lastError = fmt.Sprintf("failed to save favorites: %v", err)
	}

	if m.currentRow().Kind == RowFavorites {
		// Membership just changed underneath the view
		m.reloadGames()
	}
}

// ApplyOutcome consumes the launch result. Whatever happened, the machine
// returns to Browse; failures surface on the status line, never as a crash.
func (m *Machine) ApplyOutcome(o launch.Outcome) {
	if m.mode != ModeLaunching {
		return
	}
	m.mode = ModeBrowse
	if o.OK() {
		m.lastError = ""
	} else {
		m.lastError = o.Message()
	}
}

// Refresh recomputes the games list after the catalog changed (scan batches
// arriving) and re-clamps the selection.
func (m *Machine) Refresh() {
	m.reloadGames()
}

// ReportError surfaces a non-fatal error on the status line
func (m *Machine) ReportError(msg string) {
	m.lastError = msg
}

// reloadGames rebuilds the unfiltered games list for the current systems
// row and refilters, keeping the selection clamped into the new view.
func (m *Machine) reloadGames() {
	switch row := m.currentRow(); row.Kind {
	case RowFavorites:
		m.games = m.favoriteGames()
	case RowAll:
		m.games = m.catalog.All()
	default:
		m.games = m.catalog.GamesFor(row.System.ID)
	}

	m.view = Filter(m.games, m.query)
	m.gameIndex = clampIndex(m.gameIndex, m.view.Len())
}

// favoriteGames resolves the favorite set against the catalog. Favorites
// whose ROM vanished since the last session are simply not shown.
func (m *Machine) favoriteGames() []domain.Game {
	var games []domain.Game
	for _, id := range m.favorites.IDs() {
		if g, ok := m.catalog.Get(id); ok {
			games = append(games, g)
		}
	}
	sort.SliceStable(games, func(i, j int) bool {
		return strings.ToLower(games[i].Name) < strings.ToLower(games[j].Name)
	})
	return games
}

// clampIndex clamps i into [0, n); an empty list pins the cursor at 0
func clampIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
