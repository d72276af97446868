package domain

// System represents a configured emulated platform
type System struct {
	ID              string
	Name            string
	EmulatorPath    string
	LaunchArguments string // argument template containing the {rom_path} placeholder
	StartIn         string // working directory for the emulator ("" inherits ours)
	RomPaths        []string
}

// Game represents one ROM entry belonging to a system
type Game struct {
	ID       string // stable identifier, derived from the owning system and path
	SystemID string
	Name     string // display name shown in the games panel
	Path     string // absolute ROM path
	Size     int64  // file size in bytes, 0 if unknown
}

// GameID derives the stable identifier used for favorites and lookups.
// The path alone would almost always be unique, but two systems may share
// a ROM directory, so the owning system is part of the key.
func GameID(systemID, path string) string {
	return systemID + ":" + path
}

// ScanProgress represents the current catalog scanning state
type ScanProgress struct {
	IsScanning bool
	GamesFound int
}
