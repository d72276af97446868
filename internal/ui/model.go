package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"nobsrom/internal/catalog"
	"nobsrom/internal/domain"
	"nobsrom/internal/eventbus"
	"nobsrom/internal/input"
	"nobsrom/internal/launch"
	"nobsrom/internal/ui/logic"
)

// Model is the Bubble Tea model. It is the single owner of all UI state:
// bus events, keyboard messages and gamepad snapshots all arrive here as
// messages and are applied sequentially, so the navigation machine and the
// catalog never need their own locking story.
type Model struct {
	machine    *logic.Machine
	store      *catalog.Store
	favorites  logic.Favorites
	launcher   *launch.Launcher
	poller     *input.Poller
	bus        eventbus.EventBus
	keymap     input.Keymap
	normalizer *input.Normalizer
	help       *HelpOps
	styles     *Styles

	width  int
	height int

	scanning      bool
	launchingGame domain.Game
}

// NewModel creates the model
func NewModel(
	machine *logic.Machine,
	store *catalog.Store,
	favorites logic.Favorites,
	launcher *launch.Launcher,
	poller *input.Poller,
	bus eventbus.EventBus,
	settings input.Settings,
) *Model {
	return &Model{
		machine:    machine,
		store:      store,
		favorites:  favorites,
		launcher:   launcher,
		poller:     poller,
		bus:        bus,
		keymap:     input.DefaultKeymap(),
		normalizer: input.NewNormalizer(settings),
		styles:     NewStyles(),
	}
}

// SetTerminal wires the running program's terminal handoff into the
// launcher and the help pager. Must be called before the first launch.
func (m *Model) SetTerminal(t launch.Terminal) {
	m.launcher.SetTerminal(t)
	m.help = NewHelpOps(t)
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m, m.applyInput(m.keymap.Translate(msg, m.machine.Searching()))

	case GamepadMsg:
		events := m.normalizer.Normalize(msg.Snapshot, msg.At)
		if m.machine.Searching() {
			// A held stick must not scroll the list out from under typing
			kept := make([]input.Event, 0, len(events))
			for _, ev := range events {
				if !input.SuppressedInSearch(ev) {
					kept = append(kept, ev)
				}
			}
			events = kept
		}
		return m, m.applyInput(events)

	case LaunchFinishedMsg:
		m.machine.ApplyOutcome(msg.Outcome)
		m.poller.Resume()
		m.normalizer.Reset()
		m.bus.Publish(eventbus.LaunchFinishedEvent{
			GameID:  m.launchingGame.ID,
			Success: msg.Outcome.OK(),
			Message: msg.Outcome.Message(),
		})

	case helpClosedMsg:
		m.poller.Resume()
		m.normalizer.Reset()
		if msg.err != nil {
			log.Printf("Model: help pager failed: %v", msg.err)
			m.machine.ReportError("failed to show help")
		}

	case EventMsg:
		m.handleDomainEvent(msg.Event)
	}

	return m, nil
}

// applyInput feeds abstract events through the navigation machine and turns
// the requested effects into commands.
func (m *Model) applyInput(events []input.Event) tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range events {
		for _, eff := range m.machine.Apply(ev) {
			if cmd := m.handleEffect(eff); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleEffect(eff logic.Effect) tea.Cmd {
	switch eff := eff.(type) {
	case logic.QuitEffect:
		return tea.Quit

	case logic.LaunchEffect:
		m.launchingGame = eff.Game
		m.poller.Pause()
		m.bus.Publish(eventbus.LaunchStartedEvent{GameID: eff.Game.ID})
		sys, game := eff.System, eff.Game
		return func() tea.Msg {
			return LaunchFinishedMsg{Outcome: m.launcher.Launch(sys, game)}
		}

	case logic.ShowHelpEffect:
		if m.help == nil {
			return nil
		}
		m.poller.Pause()
		return func() tea.Msg {
			return helpClosedMsg{err: m.help.ShowHelpInPager()}
		}
	}
	return nil
}

func (m *Model) handleDomainEvent(event domain.DomainEvent) {
	switch e := event.(type) {
	case domain.GamesDiscoveredEvent:
		for _, g := range e.Games {
			m.store.Add(g)
		}
		m.machine.Refresh()

	case domain.ScanStartedEvent:
		m.scanning = true

	case domain.ScanCompletedEvent:
		m.scanning = false
		m.machine.Refresh()
		log.Printf("Model: scan completed, %d games", e.GamesFound)

	case domain.FavoriteToggledEvent:
		m.machine.Refresh()

	case domain.ErrorEvent:
		m.machine.ReportError(e.Message)
	}
}

// rowCount returns the number of games behind a systems panel row
func (m *Model) rowCount(row logic.SystemRow) int {
	switch row.Kind {
	case logic.RowFavorites:
		n := 0
		for _, id := range m.favorites.IDs() {
			if _, ok := m.store.Get(id); ok {
				n++
			}
		}
		return n
	case logic.RowAll:
		return m.store.Len()
	default:
		return len(m.store.GamesFor(row.System.ID))
	}
}
