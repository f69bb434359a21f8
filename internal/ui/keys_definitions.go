package ui

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/docdesk/internal/domain"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults  []string
	Help      string
	Msg       tea.Msg // Dispatched when the key is pressed on the canvas (nil if handled elsewhere)
	Name      string
	TipFormat string
}

// AllKeyDefinitions contains all configurable key bindings
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts", Msg: ShowHelpMsg{}, TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application", Msg: QuitMsg{}},
	{Name: "refresh", Defaults: []string{"ctrl+r"}, Help: "reload workspace", Msg: RefreshMsg{}, TipFormat: "press %s to pick up changes made from other sessions"},

	// Document keys
	{Name: "close", Defaults: []string{"x"}, Help: "close active document", Msg: CloseDocumentMsg{}},
	{Name: "close_all", Defaults: []string{"X"}, Help: "close all documents", Msg: CloseAllDocumentsMsg{}},
	{Name: "next", Defaults: []string{"tab"}, Help: "activate next document", Msg: CycleDocumentMsg{Delta: 1}},
	{Name: "open", Defaults: []string{"o"}, Help: "open document", Msg: OpenDocumentMsg{}, TipFormat: "press %s to open a document"},
	{Name: "previous", Defaults: []string{"shift+tab"}, Help: "activate previous document", Msg: CycleDocumentMsg{Delta: -1}},
	{Name: "reload", Defaults: []string{"R"}, Help: "reload active document", Msg: ReloadDocumentMsg{}},
	{Name: "view", Defaults: []string{"e"}, Help: "view active document externally", Msg: ViewDocumentMsg{}, TipFormat: "press %s to read the active document in your viewer"},

	// Geometry keys
	{Name: "move_down", Defaults: []string{"down", "j"}, Help: "move active document down", Msg: MoveDocumentMsg{DY: 1}},
	{Name: "move_left", Defaults: []string{"left", "h"}, Help: "move active document left", Msg: MoveDocumentMsg{DX: -1}},
	{Name: "move_right", Defaults: []string{"right", "l"}, Help: "move active document right", Msg: MoveDocumentMsg{DX: 1}},
	{Name: "move_up", Defaults: []string{"up", "k"}, Help: "move active document up", Msg: MoveDocumentMsg{DY: -1}, TipFormat: "press %s or the arrows to move a document (switches to freeform)"},
	{Name: "grow_height", Defaults: []string{"shift+down", "J"}, Help: "make active document taller", Msg: ResizeDocumentMsg{DH: 1}},
	{Name: "grow_width", Defaults: []string{"shift+right", "L"}, Help: "make active document wider", Msg: ResizeDocumentMsg{DW: 1}, TipFormat: "press %s to resize a document (switches to freeform)"},
	{Name: "shrink_height", Defaults: []string{"shift+up", "K"}, Help: "make active document shorter", Msg: ResizeDocumentMsg{DH: -1}},
	{Name: "shrink_width", Defaults: []string{"shift+left", "H"}, Help: "make active document narrower", Msg: ResizeDocumentMsg{DW: -1}},

	// Layout keys
	{Name: "arrange", Defaults: []string{"a"}, Help: "arrange without overlap", Msg: ArrangeMsg{}, TipFormat: "press %s to spread documents so none overlap"},
	{Name: "freeform", Defaults: []string{"f", "3"}, Help: "freeform layout", Msg: SwitchLayoutMsg{Mode: domain.LayoutFreeform}},
	{Name: "grid", Defaults: []string{"g", "2"}, Help: "grid layout", Msg: SwitchLayoutMsg{Mode: domain.LayoutGrid}, TipFormat: "press %s to tile documents in a grid"},
	{Name: "snap", Defaults: []string{"G"}, Help: "snap to grid", Msg: SnapMsg{}},
	{Name: "stacked", Defaults: []string{"s", "1"}, Help: "stacked layout", Msg: SwitchLayoutMsg{Mode: domain.LayoutStacked}},
	{Name: "suggest", Defaults: []string{"S"}, Help: "apply suggested layout", Msg: ApplySuggestionMsg{}, TipFormat: "press %s to switch to the suggested layout"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name, or nil
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}
