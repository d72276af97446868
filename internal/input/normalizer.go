package input

import "time"

// Settings tunes the gamepad normalization policy
type Settings struct {
	Deadzone       float64       // axis magnitude that counts as a press
	InitialDelay   time.Duration // hold time before auto-repeat starts
	RepeatInterval time.Duration // interval between repeats once held
}

// DefaultSettings returns reasonable defaults for common pads
func DefaultSettings() Settings {
	return Settings{
		Deadzone:       0.30,
		InitialDelay:   400 * time.Millisecond,
		RepeatInterval: 120 * time.Millisecond,
	}
}

// holdState tracks one held directional source for auto-repeat
type holdState struct {
	held  bool
	since time.Time
	last  time.Time
}

// Normalizer converts successive gamepad snapshots into abstract events.
// Directional sources fire on the rising edge out of the deadzone and then
// repeat after InitialDelay at RepeatInterval while held; crossing back
// inside the deadzone resets the edge. Face buttons fire on the rising edge
// only — a held Confirm must not launch twice.
//
// Emission order within one snapshot is fixed (up, down, left, right, then
// buttons by bit), so equal snapshots always produce the same event stream.
// Keyboard events are translated on arrival and processed before the
// gamepad tick of the same update cycle, which gives the keyboard priority
// whenever both devices act at once.
type Normalizer struct {
	settings    Settings
	dirs        [4]holdState // up, down, left, right
	prevButtons uint32
}

// NewNormalizer creates a normalizer with the given settings
func NewNormalizer(settings Settings) *Normalizer {
	return &Normalizer{settings: settings}
}

var buttonEvents = []struct {
	bit uint
	ev  Event
}{
	{ButtonConfirm, ConfirmEvent{}},
	{ButtonCancel, CancelEvent{}},
	{ButtonFavorite, ToggleFavoriteEvent{}},
	{ButtonSearch, StartSearchEvent{}},
	{ButtonQuit, QuitEvent{}},
}

// Normalize produces the events caused by the transition from the previous
// snapshot to cur at the given instant.
func (n *Normalizer) Normalize(cur Snapshot, now time.Time) []Event {
	var events []Event

	x, y := cur.Direction()
	dz := n.settings.Deadzone
	active := [4]bool{y < -dz, y > dz, x < -dz, x > dz}
	dirEvents := [4]Event{MoveUpEvent{}, MoveDownEvent{}, MovePanelLeftEvent{}, MovePanelRightEvent{}}

	for i := range active {
		hold := &n.dirs[i]
		switch {
		case active[i] && !hold.held:
			events = append(events, dirEvents[i])
			hold.held = true
			hold.since = now
			hold.last = now
		case active[i] && hold.held:
			if now.Sub(hold.since) >= n.settings.InitialDelay &&
				now.Sub(hold.last) >= n.settings.RepeatInterval {
				events = append(events, dirEvents[i])
				hold.last = now
			}
		default:
			hold.held = false
		}
	}

	pressed := cur.Buttons &^ n.prevButtons
	for _, b := range buttonEvents {
		if pressed&(1<<b.bit) != 0 {
			events = append(events, b.ev)
		}
	}
	n.prevButtons = cur.Buttons

	return events
}

// Reset clears all edge and hold state, e.g. after an emulator gave the
// terminal back and stale button state could otherwise replay.
func (n *Normalizer) Reset() {
	n.dirs = [4]holdState{}
	n.prevButtons = 0
}
