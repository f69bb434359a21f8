package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/docdesk/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Document    DocumentKeys
	Geometry    GeometryKeys
	Layout      LayoutKeys

	dispatch []dispatchEntry
}

type dispatchEntry struct {
	binding key.Binding
	msg     tea.Msg
}

// NewKeyMap creates a KeyMap. Pass nil keysConfig to use default bindings.
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	bindings := buildBindings(keysConfig)
	km := KeyMap{
		Application: newApplicationKeys(bindings),
		Document:    newDocumentKeys(bindings),
		Geometry:    newGeometryKeys(bindings),
		Layout:      newLayoutKeys(bindings),
	}

	for _, def := range AllKeyDefinitions {
		if def.Msg == nil {
			continue
		}
		km.dispatch = append(km.dispatch, dispatchEntry{
			binding: bindings[def.Name].Binding,
			msg:     def.Msg,
		})
	}
	return km
}

// Dispatch maps a key press to its action message
func (k KeyMap) Dispatch(msg tea.KeyMsg) (tea.Msg, bool) {
	for _, entry := range k.dispatch {
		if key.Matches(msg, entry.binding) {
			return entry.msg, true
		}
	}
	return nil, false
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Document.Open.Binding,
		k.Document.Next.Binding,
		k.Document.Close.Binding,
		k.Layout.Stacked.Binding,
		k.Layout.Grid.Binding,
		k.Layout.Freeform.Binding,
		k.Layout.Arrange.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}
