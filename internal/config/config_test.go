package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cs := NewConfigService()

	cfg := &Config{
		Version: 1,
		Systems: map[string]SystemConfig{
			"snes": {
				Name:            "SNES",
				EmulatorPath:    "snes9x",
				LaunchArguments: "-fullscreen {rom_path}",
				StartIn:         "/opt/snes9x",
				Paths:           []string{"/roms/snes"},
			},
		},
	}
	require.NoError(t, cs.SaveToPath(cfg, path))

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Version)
	require.Contains(t, loaded.Systems, "snes")
	assert.Equal(t, "snes9x", loaded.Systems["snes"].EmulatorPath)
	assert.Equal(t, []string{"/roms/snes"}, loaded.Systems["snes"].Paths)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	cs := NewConfigService()

	_, err := cs.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("systems = [broken"), 0644))

	cs := NewConfigService()
	_, err := cs.LoadFromPath(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestInputDefaultsAreApplied(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	cs := NewConfigService()
	cfg, err := cs.LoadFromPath(path)
	require.NoError(t, err)

	assert.InDelta(t, 0.30, cfg.Input.Deadzone, 0.001)
	assert.Equal(t, 400*time.Millisecond, cfg.Input.InitialDelay())
	assert.Equal(t, 120*time.Millisecond, cfg.Input.RepeatInterval())
}

func TestInputSettingsSurviveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cs := NewConfigService()

	cfg := DefaultConfig()
	cfg.Input.Deadzone = 0.5
	cfg.Input.InitialDelayMs = 250
	require.NoError(t, cs.SaveToPath(cfg, path))

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, loaded.Input.Deadzone, 0.001)
	assert.Equal(t, 250*time.Millisecond, loaded.Input.InitialDelay())
}

func TestSystemListIsSortedAndNamed(t *testing.T) {
	cfg := &Config{
		Systems: map[string]SystemConfig{
			"snes": {EmulatorPath: "snes9x"},
			"gb":   {Name: "Game Boy", EmulatorPath: "sameboy"},
			"nes":  {EmulatorPath: "fceux"},
		},
	}

	systems := cfg.SystemList()
	require.Len(t, systems, 3)
	assert.Equal(t, "gb", systems[0].ID)
	assert.Equal(t, "nes", systems[1].ID)
	assert.Equal(t, "snes", systems[2].ID)

	// Name falls back to the ID when unset
	assert.Equal(t, "Game Boy", systems[0].Name)
	assert.Equal(t, "nes", systems[1].Name)
}

func TestSystemListExpandsHomeInPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := &Config{
		Systems: map[string]SystemConfig{
			"nes": {EmulatorPath: "fceux", Paths: []string{"~/ROMs/NES"}},
		},
	}

	systems := cfg.SystemList()
	require.Len(t, systems, 1)
	assert.Equal(t, filepath.Join(home, "ROMs/NES"), systems[0].RomPaths[0])
}

func TestDefaultConfigIsUsable(t *testing.T) {
	cfg := DefaultConfig()

	require.Contains(t, cfg.Systems, "nes")
	assert.Contains(t, cfg.Systems["nes"].LaunchArguments, "{rom_path}")
	assert.NotZero(t, cfg.Input.Deadzone)

	systems := cfg.SystemList()
	require.Len(t, systems, 1)
	assert.Equal(t, "NES", systems[0].Name)
}
