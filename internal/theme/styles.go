package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/docdesk/internal/domain"
)

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Canvas styles
var (
	CanvasStyle = lipgloss.NewStyle().
			Background(ColorCanvas)

	CaddyBorder = lipgloss.RoundedBorder()

	ActiveCaddyBorder = lipgloss.ThickBorder()

	// DialogStyle frames dialogs drawn over the canvas
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(20)
)

// StateStyle returns the foreground style for a caddy state
func StateStyle(state domain.CaddyState) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(StateColor(state))
}

// ModeStyle returns the badge style for a layout mode
func ModeStyle(mode domain.LayoutMode) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(ModeColor(mode)).
		Padding(0, 1)
}

// CaddyStyle returns the box style of a caddy
func CaddyStyle(state domain.CaddyState, active bool) lipgloss.Style {
	border := CaddyBorder
	color := StateColor(state)
	if active {
		border = ActiveCaddyBorder
		color = ColorActive
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(color)
}
