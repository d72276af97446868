package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"nobsrom/internal/domain"
	"nobsrom/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version int                     `toml:"version"`
	Input   InputSettings           `toml:"input"`
	Systems map[string]SystemConfig `toml:"systems"`
}

// InputSettings tunes the gamepad normalization policy
type InputSettings struct {
	Deadzone         float64 `toml:"deadzone"`
	InitialDelayMs   int     `toml:"initial_delay_ms"`
	RepeatIntervalMs int     `toml:"repeat_interval_ms"`
}

// InitialDelay returns the hold time before auto-repeat kicks in
func (s InputSettings) InitialDelay() time.Duration {
	return time.Duration(s.InitialDelayMs) * time.Millisecond
}

// RepeatInterval returns the interval between repeats once held
func (s InputSettings) RepeatInterval() time.Duration {
	return time.Duration(s.RepeatIntervalMs) * time.Millisecond
}

// SystemConfig describes one emulated platform in the config file
type SystemConfig struct {
	Name            string   `toml:"name,omitempty"`
	EmulatorPath    string   `toml:"emulator_path"`
	LaunchArguments string   `toml:"launch_arguments"`
	StartIn         string   `toml:"start_in,omitempty"`
	Paths           []string `toml:"paths"`
}

// SystemList converts the systems table into ordered domain models.
// TOML tables are unordered, so the UI order is the sorted system ID.
// A "~/" prefix in ROM paths is expanded against the home directory.
func (c *Config) SystemList() []domain.System {
	ids := make([]string, 0, len(c.Systems))
	for id := range c.Systems {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	systems := make([]domain.System, 0, len(ids))
	for _, id := range ids {
		sc := c.Systems[id]
		name := sc.Name
		if name == "" {
			name = id
		}
		paths := make([]string, len(sc.Paths))
		for i, p := range sc.Paths {
			paths[i] = expandHome(p)
		}
		systems = append(systems, domain.System{
			ID:              id,
			Name:            name,
			EmulatorPath:    sc.EmulatorPath,
			LaunchArguments: sc.LaunchArguments,
			StartIn:         expandHome(sc.StartIn),
			RomPaths:        paths,
		})
	}
	return systems
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Dir() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service rooted in the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	appDir := filepath.Join(configDir, "nobsrom")
	os.MkdirAll(appDir, 0755)

	return &configService{
		filePath: filepath.Join(appDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Dir returns the directory holding the config file (favorites live there too)
func (cs *configService) Dir() string {
	return filepath.Dir(cs.filePath)
}

// Load loads the configuration, writing the default config on first run
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cs.Save(cfg); err != nil {
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}

		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{Systems: cfg.SystemList()})
		}

		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Systems: cfg.SystemList()})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Systems == nil {
		cfg.Systems = make(map[string]SystemConfig)
	}
	applyInputDefaults(&cfg.Input)

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyInputDefaults fills unset input tuning values. The exact constants
// are not critical; these defaults feel right on common pads.
func applyInputDefaults(s *InputSettings) {
	if s.Deadzone <= 0 || s.Deadzone >= 1 {
		s.Deadzone = 0.30
	}
	if s.InitialDelayMs <= 0 {
		s.InitialDelayMs = 400
	}
	if s.RepeatIntervalMs <= 0 {
		s.RepeatIntervalMs = 120
	}
}

// DefaultConfig returns the default configuration: a single NES system
// pointed at retroarch, mirroring what most users start from.
func DefaultConfig() *Config {
	cfg := &Config{
		Version: 1,
		Systems: map[string]SystemConfig{
			"nes": {
				Name:            "NES",
				EmulatorPath:    "retroarch",
				LaunchArguments: "-L cores/fceumm_libretro.so {rom_path}",
				Paths:           []string{"~/ROMs/NES"},
			},
		},
	}
	applyInputDefaults(&cfg.Input)
	return cfg
}
