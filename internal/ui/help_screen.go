package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/docdesk/internal/domain"
	"github.com/renato0307/docdesk/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

func renderGroup(b *strings.Builder, title string, bindings ...KeyWithTip) {
	b.WriteString(theme.HelpGroupStyle.Render(title) + "\n")
	for _, k := range bindings {
		b.WriteString(renderBinding(k.Binding))
	}
}

// buildHelpContent builds the help text from the active key bindings
func buildHelpContent(keys *KeyMap) string {
	var b strings.Builder

	renderGroup(&b, "Documents",
		keys.Document.Open, keys.Document.Next, keys.Document.Previous,
		keys.Document.Close, keys.Document.CloseAll, keys.Document.Reload, keys.Document.View)

	renderGroup(&b, "Move & Resize (switches to freeform)",
		keys.Geometry.MoveLeft, keys.Geometry.MoveRight, keys.Geometry.MoveUp, keys.Geometry.MoveDown,
		keys.Geometry.GrowWidth, keys.Geometry.ShrinkWidth, keys.Geometry.GrowHeight, keys.Geometry.ShrinkHeight)

	renderGroup(&b, "Layout",
		keys.Layout.Stacked, keys.Layout.Grid, keys.Layout.Freeform,
		keys.Layout.Arrange, keys.Layout.Snap, keys.Layout.Suggest)

	renderGroup(&b, "Application",
		keys.Application.Refresh, keys.Application.Help, keys.Application.Quit, keys.Application.ForceQuit)

	b.WriteString(theme.HelpGroupStyle.Render("Document States") + "\n")
	for _, state := range []domain.CaddyState{domain.CaddyLoading, domain.CaddyReady, domain.CaddyError, domain.CaddyClosing} {
		b.WriteString(theme.StateStyle(state).Width(20).Render(state.Symbol()) + theme.HelpDescStyle.Render(string(state)) + "\n")
	}

	if tips := GetTips(); len(tips) > 0 {
		b.WriteString(theme.HelpGroupStyle.Render("Tips") + "\n")
		for _, tip := range tips {
			b.WriteString(RenderTip(tip) + "\n")
		}
	}

	return b.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}
	footer := theme.MutedStyle.Render("Press esc, q or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
