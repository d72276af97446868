package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventGamesDiscovered EventType = "GamesDiscovered"
	EventError           EventType = "Error"
	EventScanStarted     EventType = "ScanStarted"
	EventScanCompleted   EventType = "ScanCompleted"
	EventScanRequested   EventType = "ScanRequested"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventFavoriteToggled EventType = "FavoriteToggled"
	EventLaunchStarted   EventType = "LaunchStarted"
	EventLaunchFinished  EventType = "LaunchFinished"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// GamesDiscoveredEvent is emitted when the catalog scanner finds ROMs.
// Games are batched per system to keep bus traffic low on large libraries.
type GamesDiscoveredEvent struct {
	SystemID string
	Games    []Game
}

func (e GamesDiscoveredEvent) Type() EventType { return EventGamesDiscovered }

// ErrorEvent is emitted when a non-fatal error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ScanStartedEvent is emitted when catalog scanning begins
type ScanStartedEvent struct {
	SystemIDs []string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent is emitted when catalog scanning completes
type ScanCompletedEvent struct {
	GamesFound int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// ScanRequestedEvent is emitted to request a new catalog scan
type ScanRequestedEvent struct {
	Systems []System
}

func (e ScanRequestedEvent) Type() EventType { return EventScanRequested }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Systems []System
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// FavoriteToggledEvent is emitted after a favorite toggle has been persisted
type FavoriteToggledEvent struct {
	GameID   string
	Favorite bool
}

func (e FavoriteToggledEvent) Type() EventType { return EventFavoriteToggled }

// LaunchStartedEvent is emitted when an emulator process is about to start
type LaunchStartedEvent struct {
	GameID string
}

func (e LaunchStartedEvent) Type() EventType { return EventLaunchStarted }

// LaunchFinishedEvent is emitted when an emulator process has terminated
type LaunchFinishedEvent struct {
	GameID  string
	Success bool
	Message string
}

func (e LaunchFinishedEvent) Type() EventType { return EventLaunchFinished }
