package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"nobsrom/internal/launch"
)

// HelpOps shows the key reference in a full-screen pager. The pager takes
// the terminal over the same way an emulator does, so it goes through the
// same release/restore dance.
type HelpOps struct {
	terminal launch.Terminal
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(terminal launch.Terminal) *HelpOps {
	return &HelpOps{terminal: terminal}
}

// renderHelpContent renders the key reference
func renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("nobsrom Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Move selection")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("←/→, h/l"), descStyle.Render("Switch between systems and games")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Enter"), descStyle.Render("Launch the selected game")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("Esc"), descStyle.Render("Back to the systems panel")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Library"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("f/F2"), descStyle.Render("Toggle favorite")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("/"), descStyle.Render("Search the current list")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("type"), descStyle.Render("Narrow the list as you type")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Enter"), descStyle.Render("Launch the selected match")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("Esc"), descStyle.Render("Cancel and restore the selection")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Gamepad"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("D-pad/stick"), descStyle.Render("Move selection (hold to repeat)")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("A / B"), descStyle.Render("Launch / back")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("X / Y"), descStyle.Render("Favorite / search")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("Start"), descStyle.Render("Quit")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("?"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s         %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}

// ShowHelpInPager shows the key reference using the ov pager
func (h *HelpOps) ShowHelpInPager() error {
	if h.terminal == nil {
		return fmt.Errorf("terminal not set")
	}

	if err := h.terminal.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Small delay to ensure ov has fully exited before restoring
		time.Sleep(100 * time.Millisecond)
		_ = h.terminal.RestoreTerminal()
	}()

	reader := strings.NewReader(renderHelpContent())
	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Don't let ov write its buffer back over our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
