package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"arrange": "a",
			"help":    []string{"?", "h"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "watch_files"
		case reflect.Int:
			switch fieldName {
			case "default_workspace_height":
				return DefaultWorkspaceHeight
			case "default_workspace_width":
				return DefaultWorkspaceWidth
			case "grid_size":
				return DefaultGridSize
			case "max_documents_visible":
				return 9
			case "max_log_files":
				return DefaultMaxLogFiles
			case "overlap_padding":
				return DefaultOverlapPadding
			case "ssh_port":
				return DefaultSSHPort
			case "stagger_interval_ms":
				return DefaultStaggerIntervalMs
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "default_layout_mode":
			return DefaultLayoutMode
		case "ssh_host":
			return DefaultSSHHost
		case "viewer":
			return "xdg-open"
		default:
			return "example"
		}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String {
			if fieldName == "document_extensions" {
				return []string{".pdf", ".md", ".txt"}
			}
			return []string{"example1", "example2"}
		}
	}

	return nil
}
