package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/docdesk/internal/theme"
)

// Tip holds a tip format string and the keys to highlight
type Tip struct {
	Format string
	Keys   []string
}

// tips is populated by newTip while bindings are built
var (
	tips   []Tip
	tipsMu sync.Mutex
)

// newTip registers a tip. Format uses %s placeholders for keys,
// e.g. newTip("press %s to arrange documents", "a"). Registering the same
// format again replaces its keys.
func newTip(format string, keys ...string) string {
	tipsMu.Lock()
	registered := false
	for i := range tips {
		if tips[i].Format == format {
			tips[i].Keys = keys
			registered = true
		}
	}
	if !registered {
		tips = append(tips, Tip{Format: format, Keys: keys})
	}
	tipsMu.Unlock()

	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	return fmt.Sprintf(format, args...)
}

// GetTips returns all registered tips
func GetTips() []Tip {
	tipsMu.Lock()
	defer tipsMu.Unlock()
	out := make([]Tip, len(tips))
	copy(out, tips)
	return out
}

// RenderTip formats a tip with highlighted keys
func RenderTip(tip Tip) string {
	parts := strings.Split(tip.Format, "%s")
	var b strings.Builder
	b.WriteString(theme.HelpLabelStyle.Render("tip: "))
	for i, part := range parts {
		b.WriteString(theme.HelpLabelStyle.Render(part))
		if i < len(tip.Keys) {
			b.WriteString(theme.HelpShortcutStyle.Render(tip.Keys[i]))
		}
	}
	return b.String()
}

// KeyWithTip wraps a key.Binding with an optional tip
type KeyWithTip struct {
	Binding key.Binding
	Tip     string
}
