package ui

import (
	"time"

	"nobsrom/internal/domain"
	"nobsrom/internal/input"
	"nobsrom/internal/launch"
)

// EventMsg wraps a domain event forwarded from the event bus into the
// program loop, so all state mutation happens on the update goroutine.
type EventMsg struct {
	Event domain.DomainEvent
}

// GamepadMsg carries one raw gamepad snapshot from the poller
type GamepadMsg struct {
	Snapshot input.Snapshot
	At       time.Time
}

// LaunchFinishedMsg carries the outcome of a completed emulator launch
type LaunchFinishedMsg struct {
	Outcome launch.Outcome
}

// helpClosedMsg signals the help pager returned the terminal
type helpClosedMsg struct {
	err error
}
