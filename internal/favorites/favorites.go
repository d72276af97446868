package favorites

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Store keeps the set of favorite game IDs. Every mutation is written
// through to disk immediately so a crash never loses more than nothing.
// The tick loop is the only mutator, so no locking is needed.
type Store struct {
	filePath string
	ids      map[string]struct{}
}

// NewStore creates a favorites store backed by the given YAML file
func NewStore(filePath string) *Store {
	return &Store{
		filePath: filePath,
		ids:      make(map[string]struct{}),
	}
}

// Load reads the favorites file. A missing file is an empty set, not an error.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read favorites file: %w", err)
	}

	var ids []string
	if err := yaml.Unmarshal(data, &ids); err != nil {
		return fmt.Errorf("failed to parse favorites: %w", err)
	}

	s.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return nil
}

// Save writes the current set to disk
func (s *Store) Save() error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create favorites directory: %w", err)
	}

	data, err := yaml.Marshal(s.IDs())
	if err != nil {
		return fmt.Errorf("failed to marshal favorites: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write favorites file: %w", err)
	}
	return nil
}

// Toggle flips membership of the given game and persists the change.
// It reports whether the game is a favorite after the toggle.
func (s *Store) Toggle(id string) (bool, error) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}

	_, nowFavorite := s.ids[id]
	if err := s.Save(); err != nil {
		return nowFavorite, err
	}
	return nowFavorite, nil
}

// Contains reports whether the game is a favorite
func (s *Store) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// IDs returns the favorite IDs in sorted order
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of favorites
func (s *Store) Len() int {
	return len(s.ids)
}
