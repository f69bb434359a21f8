package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Defaults used when neither a flag, an environment variable nor settings.json
// provide a value
const (
	DefaultGridSize            = 20
	DefaultLayoutMode          = "stacked"
	DefaultMaxDocumentsVisible = 0
	DefaultMaxLogFiles         = 1000
	DefaultOverlapPadding      = 10
	DefaultSSHHost             = "localhost"
	DefaultSSHPort             = 23234
	DefaultStaggerIntervalMs   = 50
	DefaultWorkspaceHeight     = 1080
	DefaultWorkspaceWidth      = 1920
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "arrange", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	keyToAction := make(map[string]string)
	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Settings represents the structure of ~/.docdesk/settings.json
type Settings struct {
	Debug                  *bool             `json:"debug,omitempty"`
	DefaultLayoutMode      string            `json:"default_layout_mode,omitempty"`
	DefaultWorkspaceHeight *int              `json:"default_workspace_height,omitempty"`
	DefaultWorkspaceWidth  *int              `json:"default_workspace_width,omitempty"`
	DocumentExtensions     StringArray       `json:"document_extensions,omitempty"`
	GridSize               *int              `json:"grid_size,omitempty"`
	Keys                   KeyBindingsConfig `json:"keys,omitempty"`
	MaxDocumentsVisible    *int              `json:"max_documents_visible,omitempty"`
	MaxLogFiles            *int              `json:"max_log_files,omitempty"`
	OverlapPadding         *int              `json:"overlap_padding,omitempty"`
	SSHHost                string            `json:"ssh_host,omitempty"`
	SSHPort                *int              `json:"ssh_port,omitempty"`
	StaggerIntervalMs      *int              `json:"stagger_interval_ms,omitempty"`
	Viewer                 string            `json:"viewer,omitempty"`
	WatchFiles             *bool             `json:"watch_files,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $DOCDESK_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	data, err := os.ReadFile(GetSettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to $DOCDESK_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// IntOr returns *p, or def when p is nil
func IntOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// BoolOr returns *p, or def when p is nil
func BoolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
