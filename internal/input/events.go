package input

// Event is one abstract navigation event. Both the keyboard keymap and the
// gamepad normalizer emit these, so nothing downstream branches on device.
type Event interface {
	Type() string
}

type MoveUpEvent struct{}

func (MoveUpEvent) Type() string { return "move_up" }

type MoveDownEvent struct{}

func (MoveDownEvent) Type() string { return "move_down" }

type MovePanelLeftEvent struct{}

func (MovePanelLeftEvent) Type() string { return "move_panel_left" }

type MovePanelRightEvent struct{}

func (MovePanelRightEvent) Type() string { return "move_panel_right" }

type ConfirmEvent struct{}

func (ConfirmEvent) Type() string { return "confirm" }

type CancelEvent struct{}

func (CancelEvent) Type() string { return "cancel" }

type ToggleFavoriteEvent struct{}

func (ToggleFavoriteEvent) Type() string { return "toggle_favorite" }

type StartSearchEvent struct{}

func (StartSearchEvent) Type() string { return "start_search" }

type TypeCharEvent struct {
	Char rune
}

func (TypeCharEvent) Type() string { return "type_char" }

type BackspaceEvent struct{}

func (BackspaceEvent) Type() string { return "backspace" }

type ShowHelpEvent struct{}

func (ShowHelpEvent) Type() string { return "show_help" }

type QuitEvent struct{}

func (QuitEvent) Type() string { return "quit" }

// SuppressedInSearch reports whether an event must be dropped while the
// search overlay is open, so held sticks don't move the selection mid-typing.
func SuppressedInSearch(ev Event) bool {
	switch ev.(type) {
	case MoveUpEvent, MoveDownEvent, MovePanelLeftEvent, MovePanelRightEvent,
		ToggleFavoriteEvent, StartSearchEvent, ShowHelpEvent:
		return true
	default:
		return false
	}
}
