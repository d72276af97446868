package favorites

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "favorites.yaml"))
}

func TestLoadMissingFileIsEmptySet(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.Load())
	assert.Equal(t, 0, s.Len())
}

func TestTogglePersistsImmediately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.yaml")
	s := NewStore(path)

	fav, err := s.Toggle("nes:/roms/Metroid.nes")
	require.NoError(t, err)
	assert.True(t, fav)
	assert.True(t, s.Contains("nes:/roms/Metroid.nes"))

	// A fresh store sees the toggle without an explicit save step
	reloaded := NewStore(path)
	require.NoError(t, reloaded.Load())
	assert.True(t, reloaded.Contains("nes:/roms/Metroid.nes"))
}

func TestToggleTwiceRemoves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.yaml")
	s := NewStore(path)

	_, err := s.Toggle("nes:/roms/Metroid.nes")
	require.NoError(t, err)
	fav, err := s.Toggle("nes:/roms/Metroid.nes")
	require.NoError(t, err)
	assert.False(t, fav)

	reloaded := NewStore(path)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 0, reloaded.Len())
}

func TestIDsAreSorted(t *testing.T) {
	s := tempStore(t)

	for _, id := range []string{"snes:/b", "nes:/a", "gb:/c"} {
		_, err := s.Toggle(id)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"gb:/c", "nes:/a", "snes:/b"}, s.IDs())
}

func TestLoadCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not: [valid: yaml"), 0644))

	s := NewStore(path)
	assert.Error(t, s.Load())
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "favorites.yaml")
	s := NewStore(path)

	_, err := s.Toggle("nes:/roms/Metroid.nes")
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
