package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Keymap defines the keyboard bindings. Keyboard edges are inherent: the
// terminal delivers one KeyMsg per press and owns auto-repeat for held keys,
// so no hold bookkeeping is needed on this path.
type Keymap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Favorite  key.Binding
	Search    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Backspace key.Binding
}

// DefaultKeymap returns the default key bindings
func DefaultKeymap() Keymap {
	return Keymap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "systems")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "games")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "launch")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Favorite:  key.NewBinding(key.WithKeys("f", "f2"), key.WithHelp("f", "favorite")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
	}
}

// Translate maps a key message to abstract events. While searching,
// printable keys become TypeChar and navigation bindings are suppressed so
// typing "metroid" doesn't scroll the list.
func (k Keymap) Translate(msg tea.KeyMsg, searching bool) []Event {
	if key.Matches(msg, k.ForceQuit) {
		return []Event{QuitEvent{}}
	}

	if searching {
		switch {
		case key.Matches(msg, k.Confirm):
			return []Event{ConfirmEvent{}}
		case key.Matches(msg, k.Cancel):
			return []Event{CancelEvent{}}
		case key.Matches(msg, k.Backspace):
			return []Event{BackspaceEvent{}}
		}

		switch msg.Type {
		case tea.KeySpace:
			return []Event{TypeCharEvent{Char: ' '}}
		case tea.KeyRunes:
			if msg.Alt {
				return nil
			}
			events := make([]Event, 0, len(msg.Runes))
			for _, r := range msg.Runes {
				events = append(events, TypeCharEvent{Char: r})
			}
			return events
		}
		return nil
	}

	switch {
	case key.Matches(msg, k.Up):
		return []Event{MoveUpEvent{}}
	case key.Matches(msg, k.Down):
		return []Event{MoveDownEvent{}}
	case key.Matches(msg, k.Left):
		return []Event{MovePanelLeftEvent{}}
	case key.Matches(msg, k.Right):
		return []Event{MovePanelRightEvent{}}
	case key.Matches(msg, k.Confirm):
		return []Event{ConfirmEvent{}}
	case key.Matches(msg, k.Cancel):
		return []Event{CancelEvent{}}
	case key.Matches(msg, k.Favorite):
		return []Event{ToggleFavoriteEvent{}}
	case key.Matches(msg, k.Search):
		return []Event{StartSearchEvent{}}
	case key.Matches(msg, k.Help):
		return []Event{ShowHelpEvent{}}
	case key.Matches(msg, k.Quit):
		return []Event{QuitEvent{}}
	}
	return nil
}
