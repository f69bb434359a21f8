package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/docdesk/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	ForceQuit KeyWithTip
	Help      KeyWithTip
	Quit      KeyWithTip
	Refresh   KeyWithTip
}

func newApplicationKeys(b map[string]KeyWithTip) ApplicationKeys {
	return ApplicationKeys{
		ForceQuit: b["force_quit"],
		Help:      b["help"],
		Quit:      b["quit"],
		Refresh:   b["refresh"],
	}
}

// buildBindings creates every binding from the definitions, applying overrides
func buildBindings(customKeys config.KeyBindingsConfig) map[string]KeyWithTip {
	defaults := GetDefaultKeyBindings()
	bindings := make(map[string]KeyWithTip, len(AllKeyDefinitions))
	for _, def := range AllKeyDefinitions {
		bindings[def.Name] = buildBinding(def.Name, defaults, customKeys)
	}
	return bindings
}

// buildBinding creates a KeyWithTip from the key definition, using custom keys if provided
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) KeyWithTip {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	result := KeyWithTip{
		Binding: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), def.Help),
		),
	}
	if def.TipFormat != "" && len(keys) > 0 {
		result.Tip = newTip(def.TipFormat, keys[0])
	}
	return result
}
