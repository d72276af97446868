package launch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nobsrom/internal/domain"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "emulator.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func TestResolveSubstitutesPlaceholderInsideToken(t *testing.T) {
	sys := domain.System{
		EmulatorPath:    "retroarch",
		LaunchArguments: "-L cores/fceumm_libretro.so {rom_path}",
	}
	game := domain.Game{Path: "/roms/nes/Metroid.nes"}

	argv := Resolve(sys, game)
	assert.Equal(t, []string{"retroarch", "-L", "cores/fceumm_libretro.so", "/roms/nes/Metroid.nes"}, argv)
}

func TestResolveSubstitutesEmbeddedPlaceholder(t *testing.T) {
	sys := domain.System{
		EmulatorPath:    "emu",
		LaunchArguments: "--rom={rom_path} --fullscreen",
	}
	game := domain.Game{Path: "/roms/game.bin"}

	argv := Resolve(sys, game)
	assert.Equal(t, []string{"emu", "--rom=/roms/game.bin", "--fullscreen"}, argv)
}

func TestResolveAppendsRomPathWithoutPlaceholder(t *testing.T) {
	sys := domain.System{
		EmulatorPath:    "mednafen",
		LaunchArguments: "-fs 1",
	}
	game := domain.Game{Path: "/roms/game.pce"}

	argv := Resolve(sys, game)
	assert.Equal(t, []string{"mednafen", "-fs", "1", "/roms/game.pce"}, argv)
}

func TestResolveEmptyArgumentsJustAppendsRom(t *testing.T) {
	sys := domain.System{EmulatorPath: "emu"}
	game := domain.Game{Path: "/roms/game.gb"}

	assert.Equal(t, []string{"emu", "/roms/game.gb"}, Resolve(sys, game))
}

func TestLaunchMissingEmulatorIsConfigurationError(t *testing.T) {
	l := New()
	sys := domain.System{EmulatorPath: "definitely-not-an-emulator-on-path"}

	outcome := l.Launch(sys, domain.Game{Path: "/roms/game.nes"})
	assert.Equal(t, ConfigurationError, outcome.Kind)
	assert.False(t, outcome.OK())
	assert.Contains(t, outcome.Message(), "not usable")
}

func TestLaunchSuccess(t *testing.T) {
	l := New()
	sys := domain.System{EmulatorPath: writeScript(t, "exit 0")}

	outcome := l.Launch(sys, domain.Game{Path: "/roms/game.nes"})
	assert.True(t, outcome.OK())
	assert.Empty(t, outcome.Message())
}

func TestLaunchNonZeroExitIsLaunchErrorWithCode(t *testing.T) {
	l := New()
	sys := domain.System{EmulatorPath: writeScript(t, "exit 3")}

	outcome := l.Launch(sys, domain.Game{Path: "/roms/game.nes"})
	assert.Equal(t, LaunchError, outcome.Kind)
	assert.Equal(t, 3, outcome.ExitCode)
	assert.Contains(t, outcome.Message(), "status 3")
}

func TestLaunchRunsInStartInDirectory(t *testing.T) {
	startIn := t.TempDir()
	l := New()
	sys := domain.System{
		EmulatorPath: writeScript(t, "pwd > out.txt"),
		StartIn:      startIn,
	}

	outcome := l.Launch(sys, domain.Game{Path: "/roms/game.nes"})
	require.True(t, outcome.OK())

	// The relative redirect lands in the working directory
	data, err := os.ReadFile(filepath.Join(startIn, "out.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), filepath.Base(startIn))
}
