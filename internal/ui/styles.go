package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	PanelActive    lipgloss.Style
	PanelInactive  lipgloss.Style
	SystemRow      lipgloss.Style
	SelectedRow    lipgloss.Style
	GameRow        lipgloss.Style
	Favorite       lipgloss.Style
	SystemTag      lipgloss.Style
	Size           lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	StatusError    lipgloss.Style
	StatusScanning lipgloss.Style
	Search         lipgloss.Style
	Help           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		PanelActive: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1),
		PanelInactive: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SystemRow:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SelectedRow:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		GameRow:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Favorite:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		SystemTag:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Size:           lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:            lipgloss.NewStyle().Faint(true),
		Status:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		StatusScanning: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Search:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Help:           lipgloss.NewStyle().Faint(true),
	}
}
