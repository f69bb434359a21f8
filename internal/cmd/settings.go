package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/renato0307/docdesk/internal/config"
	"github.com/renato0307/docdesk/internal/ui"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Example SettingsExampleCmd `cmd:"example" help:"Show an example settings.json with every option"`
	Show    SettingsShowCmd    `cmd:"show" help:"Show the settings file and the effective values" default:"1"`
}

// SettingsShowCmd prints the loaded settings
type SettingsShowCmd struct{}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	fmt.Printf("Settings file: %s\n", config.GetSettingsPath())
	fmt.Printf("Database:      %s\n\n", config.GetDBPath())

	if _, err := cli.keyBindings(); err != nil {
		return err
	}

	opts, err := containerOptions(cli.settings)
	if err != nil {
		return err
	}

	w := newTabWriter()
	fmt.Fprintf(w, "default_layout_mode\t%s\n", opts.Defaults.LayoutMode)
	fmt.Fprintf(w, "default_workspace_size\t%.0fx%.0f\n", opts.Defaults.Size.Width(), opts.Defaults.Size.Height())
	fmt.Fprintf(w, "document_extensions\t%v\n", opts.DocumentExtensions)
	fmt.Fprintf(w, "grid_size\t%.0f\n", opts.Engine.GridSize)
	fmt.Fprintf(w, "max_documents_visible\t%d\n", opts.Defaults.MaxDocumentsVisible)
	fmt.Fprintf(w, "overlap_padding\t%.0f\n", opts.Defaults.OverlapPadding)
	fmt.Fprintf(w, "stagger_interval\t%s\n", opts.Engine.StaggerInterval)
	fmt.Fprintf(w, "viewer\t%s\n", opts.Viewer)
	fmt.Fprintf(w, "watch_files\t%t\n", opts.WatchFiles)
	if cli.settings != nil && len(cli.settings.Keys) > 0 {
		names := make([]string, 0, len(cli.settings.Keys))
		for name := range cli.settings.Keys {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "keys.%s\t%v\n", name, []string(cli.settings.Keys[name]))
		}
	}
	return w.Flush()
}

// SettingsExampleCmd displays an example settings file
type SettingsExampleCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the example command
func (s *SettingsExampleCmd) Run() error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(map[string]any{
			"format":        example,
			"settings_file": settingsFile,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := newTabWriter()
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case string:
			valueStr = v
		case []string, map[string]any:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Printf("Valid key binding names: %v\n", ui.GetValidKeyNames())
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}
