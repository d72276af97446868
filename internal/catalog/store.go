package catalog

import (
	"sort"
	"strings"
	"sync"

	"nobsrom/internal/domain"
)

// Store holds the discovered games for the session. The scanner fills it
// from a background goroutine while the UI reads it, hence the lock; the
// game set itself is treated as an immutable snapshot once scanning ends.
type Store struct {
	mu       sync.RWMutex
	bySystem map[string][]domain.Game
	byID     map[string]domain.Game
}

// NewStore creates an empty game store
func NewStore() *Store {
	return &Store{
		bySystem: make(map[string][]domain.Game),
		byID:     make(map[string]domain.Game),
	}
}

// Add appends games to their owning systems
func (s *Store) Add(games ...domain.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range games {
		if _, exists := s.byID[g.ID]; exists {
			continue
		}
		s.bySystem[g.SystemID] = append(s.bySystem[g.SystemID], g)
		s.byID[g.ID] = g
	}
}

// GamesFor returns the games of one system in discovery order
func (s *Store) GamesFor(systemID string) []domain.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := s.bySystem[systemID]
	out := make([]domain.Game, len(games))
	copy(out, games)
	return out
}

// All returns every game across systems, sorted case-insensitively by name
func (s *Store) All() []domain.Game {
	s.mu.RLock()
	out := make([]domain.Game, 0, len(s.byID))
	for _, games := range s.bySystem {
		out = append(out, games...)
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// Get looks up a game by its stable identifier
func (s *Store) Get(id string) (domain.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.byID[id]
	return g, ok
}

// Len returns the total number of games
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
