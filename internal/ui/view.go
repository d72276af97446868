package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nobsrom/internal/ui/logic"
)

// formatSize renders a byte count the way file managers do
func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGT"[exp])
}

// truncate cuts s to width runes with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// scrollWindow returns the [start, end) slice of a list of n rows that keeps
// the selection visible in a window of visible rows.
func scrollWindow(selected, n, visible int) (int, int) {
	if visible <= 0 || n <= visible {
		return 0, n
	}
	start := selected - visible/2
	if start < 0 {
		start = 0
	}
	if start > n-visible {
		start = n - visible
	}
	return start, start + visible
}

// View renders the full screen: title, the two panels, the search line when
// the overlay is open and the status line.
func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	snap := m.machine.Snapshot()

	// Title plus status plus optional search line, panel borders eat 2 rows
	listHeight := m.height - 4
	if snap.Mode == logic.ModeSearch {
		listHeight--
	}
	if listHeight < 3 {
		listHeight = 3
	}

	systemsWidth := m.width / 4
	if systemsWidth < 18 {
		systemsWidth = 18
	}
	gamesWidth := m.width - systemsWidth - 6

	systems := m.renderSystemsPanel(snap, systemsWidth, listHeight)
	games := m.renderGamesPanel(snap, gamesWidth, listHeight)

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("nobsrom"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, systems, games))
	b.WriteString("\n")
	if snap.Mode == logic.ModeSearch {
		b.WriteString(m.styles.Search.Render("/" + snap.Query + "▌"))
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatusLine(snap))
	return b.String()
}

func (m *Model) renderSystemsPanel(snap logic.Snapshot, width, height int) string {
	var lines []string
	start, end := scrollWindow(snap.SystemIndex, len(snap.Rows), height)
	for i := start; i < end; i++ {
		row := snap.Rows[i]

		var icon string
		switch row.Kind {
		case logic.RowFavorites:
			icon = "★"
		case logic.RowAll:
			icon = "◆"
		default:
			icon = "▸"
		}

		label := fmt.Sprintf("%s %s (%d)", icon, row.Label(), m.rowCount(row))
		label = truncate(label, width-2)

		style := m.styles.SystemRow
		if i == snap.SystemIndex {
			style = m.styles.SelectedRow
			if snap.Panel != logic.PanelSystems {
				style = m.styles.SelectedRow.Bold(false)
			}
		}
		lines = append(lines, style.Render(label))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}

	panel := m.styles.PanelInactive
	if snap.Panel == logic.PanelSystems {
		panel = m.styles.PanelActive
	}
	return panel.Width(width).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderGamesPanel(snap logic.Snapshot, width, height int) string {
	// Tag rows with their system on the aggregate views
	showTag := snap.Rows[snap.SystemIndex].Kind != logic.RowSystem

	var lines []string
	start, end := scrollWindow(snap.GameIndex, snap.View.Len(), height)
	for i := start; i < end; i++ {
		game := snap.Games[snap.View.Indices[i]]

		cursor := "  "
		if i == snap.GameIndex && snap.Panel == logic.PanelGames {
			cursor = "▸ "
		}
		star := "  "
		if m.favorites.Contains(game.ID) {
			star = m.styles.Favorite.Render("★ ")
		}

		size := m.styles.Size.Render(formatSize(game.Size))
		tag := ""
		if showTag {
			tag = m.styles.SystemTag.Render("["+strings.ToUpper(game.SystemID)+"] ")
		}

		nameWidth := width - 2 - 2 - lipgloss.Width(tag) - lipgloss.Width(size) - 3
		name := truncate(game.Name, nameWidth)

		style := m.styles.GameRow
		if i == snap.GameIndex && snap.Panel == logic.PanelGames {
			style = m.styles.SelectedRow
		}
		lines = append(lines, cursor+star+tag+style.Render(name)+"  "+size)
	}
	if snap.View.Empty() {
		msg := "no games found"
		if snap.Query != "" {
			msg = fmt.Sprintf("no matches for %q", snap.Query)
		}
		lines = append(lines, m.styles.Dim.Render(msg))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}

	panel := m.styles.PanelInactive
	if snap.Panel == logic.PanelGames {
		panel = m.styles.PanelActive
	}
	return panel.Width(width).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderStatusLine(snap logic.Snapshot) string {
	counter := fmt.Sprintf("%d/%d", min(snap.GameIndex+1, snap.View.Len()), snap.View.Len())

	var right string
	switch {
	case snap.Mode == logic.ModeLaunching:
		right = m.styles.StatusScanning.Render("launching…")
	case snap.LastError != "":
		right = m.styles.StatusError.Render(snap.LastError)
	case m.scanning:
		right = m.styles.StatusScanning.Render("scanning…")
	default:
		right = m.styles.Help.Render("enter: launch • f: favorite • /: search • ?: help • q: quit")
	}

	return m.styles.Status.Render(counter) + "  " + right
}
