package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Help        lipgloss.Style
	Zone        lipgloss.Style
	ZoneActive  lipgloss.Style
	ZoneErrored lipgloss.Style
	ZoneHasFile lipgloss.Style
	FileName    lipgloss.Style
	FileMeta    lipgloss.Style
	Required    lipgloss.Style
	StatusError lipgloss.Style
	StatusOK    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	zone := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Align(lipgloss.Center, lipgloss.Center)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim:         lipgloss.NewStyle().Faint(true),
		Help:        lipgloss.NewStyle().Faint(true),
		Zone:        zone,
		ZoneActive:  zone.BorderStyle(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("51")), // cyan
		ZoneErrored: zone.BorderForeground(lipgloss.Color("203")),                                      // red
		ZoneHasFile: zone.BorderForeground(lipgloss.Color("78")),                                       // green
		FileName:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		FileMeta:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Required:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		StatusOK:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
	}
}

// ZoneStyle picks the zone style for the current flags.
// Drag-active wins over errored, errored over has-files.
func (s *Styles) ZoneStyle(dragActive, errored, hasFiles bool) lipgloss.Style {
	switch {
	case dragActive:
		return s.ZoneActive
	case errored:
		return s.ZoneErrored
	case hasFiles:
		return s.ZoneHasFile
	default:
		return s.Zone
	}
}
