package catalog

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"nobsrom/internal/domain"
	"nobsrom/internal/eventbus"
)

// ScannerService lists ROM files for configured systems
type ScannerService interface {
	StartScan(ctx context.Context, systems []domain.System) error
}

// scannerService is the concrete implementation
type scannerService struct {
	bus        eventbus.EventBus
	mu         sync.Mutex
	isScanning bool
}

// NewScannerService creates a new scanner service
func NewScannerService(bus eventbus.EventBus) ScannerService {
	ss := &scannerService{bus: bus}

	// Subscribe to scan requests
	bus.Subscribe(eventbus.EventScanRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ScanRequestedEvent); ok {
			go ss.StartScan(context.Background(), event.Systems)
		}
	})

	return ss
}

// StartScan lists the ROM directories of every system and publishes the
// discovered games in per-system batches. Listing is flat, not recursive:
// a system's ROM directory is expected to contain the ROMs directly.
func (ss *scannerService) StartScan(ctx context.Context, systems []domain.System) error {
	ss.mu.Lock()
	if ss.isScanning {
		ss.mu.Unlock()
		return fmt.Errorf("scan already in progress")
	}
	ss.isScanning = true
	ss.mu.Unlock()

	defer func() {
		ss.mu.Lock()
		ss.isScanning = false
		ss.mu.Unlock()
	}()

	ids := make([]string, len(systems))
	for i, sys := range systems {
		ids[i] = sys.ID
	}
	ss.bus.Publish(eventbus.ScanStartedEvent{SystemIDs: ids})
	log.Printf("Scanner: starting scan of %d systems", len(systems))

	total := 0
	for _, sys := range systems {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		games := ss.scanSystem(sys)
		total += len(games)
		if len(games) > 0 {
			ss.bus.Publish(eventbus.GamesDiscoveredEvent{SystemID: sys.ID, Games: games})
		}
	}

	ss.bus.Publish(eventbus.ScanCompletedEvent{GamesFound: total})
	log.Printf("Scanner: scan complete, %d games found", total)
	return nil
}

// scanSystem lists one system's ROM directories, skipping dotfiles
func (ss *scannerService) scanSystem(sys domain.System) []domain.Game {
	var games []domain.Game

	for _, root := range sys.RomPaths {
		entries, err := os.ReadDir(root)
		if err != nil {
			ss.bus.Publish(eventbus.ErrorEvent{
				Message: fmt.Sprintf("invalid ROM path for %s: %s", sys.Name, root),
				Err:     err,
			})
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}

			path := filepath.Join(root, name)
			var size int64
			if info, err := entry.Info(); err == nil {
				size = info.Size()
			}

			games = append(games, domain.Game{
				ID:       domain.GameID(sys.ID, path),
				SystemID: sys.ID,
				Name:     name,
				Path:     path,
				Size:     size,
			})
		}
	}

	sort.SliceStable(games, func(i, j int) bool {
		return strings.ToLower(games[i].Name) < strings.ToLower(games[j].Name)
	})
	return games
}
