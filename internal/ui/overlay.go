package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// compositeOverlay centers overlay on top of a dimmed copy of background
func compositeOverlay(background, overlay string, width, height int) string {
	bgLines := dimLines(background, width, height)
	overlayLines := strings.Split(overlay, "\n")

	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, lipgloss.Width(line))
	}
	startX := max((width-overlayWidth)/2, 0)
	startY := max((height-len(overlayLines))/2, 0)

	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		right := max(width-startX-lipgloss.Width(line), 0)
		bgLines[y] = dimStyle.Render(strings.Repeat(" ", startX)) + line + dimStyle.Render(strings.Repeat(" ", right))
	}
	return strings.Join(bgLines, "\n")
}

// dimLines strips styling from background, dims it and pads it to width x height
func dimLines(background string, width, height int) []string {
	lines := strings.Split(background, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		plain := ansi.Strip(line)
		if pad := width - lipgloss.Width(plain); pad > 0 {
			plain += strings.Repeat(" ", pad)
		}
		lines[i] = dimStyle.Render(plain)
	}
	return lines
}
