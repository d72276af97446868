package launch

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
	"time"

	"nobsrom/internal/domain"
)

// RomPathPlaceholder is the token in a system's argument template that is
// replaced with the selected game's ROM path.
const RomPathPlaceholder = "{rom_path}"

// OutcomeKind classifies the result of a launch attempt
type OutcomeKind int

const (
	Success OutcomeKind = iota
	ConfigurationError
	LaunchError
)

// Outcome is the result of a launch attempt. Every failure path produces an
// Outcome; nothing escapes the launcher as a panic or unhandled error.
type Outcome struct {
	Kind     OutcomeKind
	ExitCode int // set for LaunchError caused by a non-zero exit
	Err      error
}

// OK reports whether the launch succeeded
func (o Outcome) OK() bool {
	return o.Kind == Success
}

// Message returns a human-readable cause suitable for the status line
func (o Outcome) Message() string {
	switch o.Kind {
	case Success:
		return ""
	case ConfigurationError:
		return fmt.Sprintf("emulator not usable: %v", o.Err)
	default:
		if o.ExitCode != 0 {
			return fmt.Sprintf("emulator exited with status %d", o.ExitCode)
		}
		return fmt.Sprintf("failed to launch emulator: %v", o.Err)
	}
}

// Terminal abstracts the terminal handoff around a child process. It is
// satisfied by *tea.Program; a nil Terminal skips the handoff (tests).
type Terminal interface {
	ReleaseTerminal() error
	RestoreTerminal() error
}

// Launcher spawns emulator processes. At most one launch runs at a time;
// the navigation state machine enforces that by refusing Confirm while a
// launch is in flight.
type Launcher struct {
	terminal Terminal
}

// New creates a launcher
func New() *Launcher {
	return &Launcher{}
}

// SetTerminal sets the terminal handoff used around launches
func (l *Launcher) SetTerminal(t Terminal) {
	l.terminal = t
}

// Resolve builds the argument vector for launching a game: the template is
// split on whitespace and the placeholder is substituted inside whichever
// token contains it. A template without the placeholder gets the ROM path
// appended so the emulator always receives it.
func Resolve(sys domain.System, game domain.Game) []string {
	argv := []string{sys.EmulatorPath}
	substituted := false
	for _, arg := range strings.Fields(sys.LaunchArguments) {
		if strings.Contains(arg, RomPathPlaceholder) {
			arg = strings.ReplaceAll(arg, RomPathPlaceholder, game.Path)
			substituted = true
		}
		argv = append(argv, arg)
	}
	if !substituted {
		argv = append(argv, game.Path)
	}
	return argv
}

// Launch resolves the command for the selection, spawns the emulator with
// the terminal handed over, and blocks until it exits.
func (l *Launcher) Launch(sys domain.System, game domain.Game) Outcome {
	argv := Resolve(sys, game)

	if _, err := exec.LookPath(argv[0]); err != nil {
		return Outcome{Kind: ConfigurationError, Err: err}
	}

	if l.terminal != nil {
		if err := l.terminal.ReleaseTerminal(); err != nil {
			return Outcome{Kind: LaunchError, Err: err}
		}
		defer func() {
			// Clear screen to reduce visual artifacts when returning
			fmt.Print("\x1b[2J\x1b[H")
			time.Sleep(150 * time.Millisecond)
			_ = l.terminal.RestoreTerminal()
		}()
	}

	log.Printf("Launcher: starting %q", strings.Join(argv, " "))

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = sys.StartIn
	// Inherit stdio so the emulator fully takes over the terminal
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return Outcome{Kind: LaunchError, ExitCode: exitErr.ExitCode(), Err: err}
		}
		return Outcome{Kind: LaunchError, Err: err}
	}

	log.Printf("Launcher: %q exited cleanly", argv[0])
	return Outcome{Kind: Success}
}
