package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/docdesk/internal/domain"
)

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Caddy state colors
const (
	ColorClosing Color = "8" // Gray
	ColorError   Color = "1" // Red
	ColorLoading Color = "3" // Yellow
	ColorReady   Color = "2" // Green
)

// UI semantic colors
const (
	ColorActive    Color = "212" // Pink - active caddy border
	ColorCanvas    Color = "236" // Dark gray - workspace background
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
	ColorWarning   Color = "214" // Orange
)

// Layout mode colors
const (
	ColorFreeform Color = "141" // Purple
	ColorGrid     Color = "33"  // Blue
	ColorStacked  Color = "46"  // Green
)

// StateColor returns the color used for a caddy state
func StateColor(state domain.CaddyState) Color {
	switch state {
	case domain.CaddyLoading:
		return ColorLoading
	case domain.CaddyReady:
		return ColorReady
	case domain.CaddyError:
		return ColorError
	case domain.CaddyClosing:
		return ColorClosing
	}
	return ColorMuted
}

// ModeColor returns the color used for a layout mode
func ModeColor(mode domain.LayoutMode) Color {
	switch mode {
	case domain.LayoutStacked:
		return ColorStacked
	case domain.LayoutGrid:
		return ColorGrid
	case domain.LayoutFreeform:
		return ColorFreeform
	}
	return ColorMuted
}
