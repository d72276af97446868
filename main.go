package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"nobsrom/internal/catalog"
	"nobsrom/internal/config"
	"nobsrom/internal/eventbus"
	"nobsrom/internal/favorites"
	"nobsrom/internal/input"
	"nobsrom/internal/launch"
	"nobsrom/internal/ui"
	"nobsrom/internal/ui/logic"
)

// pollInterval is the gamepad sampling rate, roughly one frame at 60 Hz
const pollInterval = 16 * time.Millisecond

// favoritesPublisher decorates the favorites store so every persisted
// toggle also lands on the event bus.
type favoritesPublisher struct {
	*favorites.Store
	bus eventbus.EventBus
}

func (f favoritesPublisher) Toggle(id string) (bool, error) {
	fav, err := f.Store.Toggle(id)
	if err == nil {
		f.bus.Publish(eventbus.FavoriteToggledEvent{GameID: id, Favorite: fav})
	}
	return fav, err
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("nobsrom.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()

	// Load configuration, writing the default config on first run
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	systems := cfg.SystemList()
	log.Printf("Loaded config with %d systems", len(systems))

	// Load favorites from beside the config file
	favStore := favorites.NewStore(filepath.Join(configSvc.Dir(), "favorites.yaml"))
	if err := favStore.Load(); err != nil {
		log.Printf("Could not load favorites: %v", err)
	}
	favs := favoritesPublisher{Store: favStore, bus: bus}

	// Initialize services
	gameStore := catalog.NewStore()
	scannerSvc := catalog.NewScannerService(bus)
	launcher := launch.New()

	machine := logic.NewMachine(systems, gameStore, favs)

	inputSettings := input.Settings{
		Deadzone:       cfg.Input.Deadzone,
		InitialDelay:   cfg.Input.InitialDelay(),
		RepeatInterval: cfg.Input.RepeatInterval(),
	}

	// The poller closes over the program, which doesn't exist yet; it only
	// starts reading after the program is assigned below.
	var p *tea.Program
	poller := input.NewPoller(pollInterval, func(s input.Snapshot, at time.Time) {
		p.Send(ui.GamepadMsg{Snapshot: s, At: at})
	})

	uiModel := ui.NewModel(machine, gameStore, favs, launcher, poller, bus, inputSettings)
	p = tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetTerminal(p)

	// Forward bus events into the program loop so all state changes happen
	// on the update goroutine
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, et := range []eventbus.EventType{
		eventbus.EventGamesDiscovered,
		eventbus.EventScanStarted,
		eventbus.EventScanCompleted,
		eventbus.EventFavoriteToggled,
		eventbus.EventError,
	} {
		bus.Subscribe(et, forward)
	}

	// Start the gamepad poller and the initial library scan
	go poller.Run()
	go scannerSvc.StartScan(ctx, systems)

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	poller.Stop()
	cancel()
}
