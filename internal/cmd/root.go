package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/renato0307/docdesk/internal/adapters/viewer"
	"github.com/renato0307/docdesk/internal/config"
	"github.com/renato0307/docdesk/internal/logging"
	"github.com/renato0307/docdesk/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Verbose     bool             `help:"Also print log records to stderr" short:"v"`

	Run       RunCmd       `cmd:"" help:"Start the workspace canvas (default)" default:"1"`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the workspace canvas over SSH"`
	Workspace WorkspaceCmd `cmd:"workspace" aliases:"ws" help:"Manage workspaces"`
	Docs      DocsCmd      `cmd:"docs" help:"Open, close and arrange documents"`
	Layout    LayoutCmd    `cmd:"layout" help:"Switch, inspect and adjust layouts"`
	Settings  SettingsCmd  `cmd:"settings" help:"Show settings"`
	About     VersionCmd   `cmd:"" name:"version" help:"Show version information"`

	// Internal fields (not flags)
	Container   *Container       `kong:"-"`
	settings    *config.Settings `kong:"-"`
	versionInfo string           `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// SetVersionInfo sets the text printed by the version command
func (c *CLI) SetVersionInfo(info string) {
	c.versionInfo = info
}

// AfterApply initializes logging after CLI parsing, applies settings and
// binds the Container for the commands
func (c *CLI) AfterApply(kctx *kong.Context) error {
	// CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == config.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("DOCDESK_MAX_LOG_FILES"); !hasEnv && c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("DOCDESK_DEBUG"); !hasEnv && config.BoolOr(c.settings.Debug, false) {
				c.Debug = true
			}
		}
	}

	if err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}
	if c.Verbose {
		level := log.InfoLevel
		if c.Debug {
			level = log.DebugLevel
		}
		logging.EnableConsole(os.Stderr, level)
	}

	// Share the settings with the gorm logger and child processes
	if c.Debug || c.DebugFile != "" {
		os.Setenv("DOCDESK_DEBUG", "1")
	}
	if c.MaxLogFiles != config.DefaultMaxLogFiles {
		os.Setenv("DOCDESK_MAX_LOG_FILES", strconv.Itoa(c.MaxLogFiles))
	}

	// Created after logging so the storage layer logs to the right place
	opts, err := containerOptions(c.settings)
	if err != nil {
		return err
	}
	container, err := NewContainer(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container
	kctx.Bind(container)

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// keyBindings returns the validated key overrides from settings.json
func (c *CLI) keyBindings() (config.KeyBindingsConfig, error) {
	if c.settings == nil || c.settings.Keys == nil {
		return nil, nil
	}
	if err := c.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	logging.Logger.Debug("Custom key bindings loaded and validated")
	return c.settings.Keys, nil
}

// modelOptions builds the canvas options shared by run and serve
func (c *CLI) modelOptions(container *Container, canvas CanvasFlags) (ui.Options, error) {
	keys, err := c.keyBindings()
	if err != nil {
		return ui.Options{}, err
	}

	var extensions []string
	if c.settings != nil {
		extensions = c.settings.DocumentExtensions
	}

	return ui.Options{
		DevMode:            canvas.Dev,
		DocumentExtensions: extensions,
		ErrorClearDelay:    time.Duration(canvas.ErrorClearDelay) * time.Second,
		Keys:               keys,
		MoveStep:           float64(canvas.MoveStep),
		ResizeStep:         float64(canvas.ResizeStep),
		Viewer:             container.Viewer,
		WatchService:       container.WatchService,
		Workspaces:         container.WorkspaceService,
	}, nil
}

// CanvasFlags are the canvas settings shared by run and serve
type CanvasFlags struct {
	Dev             bool `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int  `help:"Seconds before error messages auto-clear" default:"10"`
	MoveStep        int  `help:"Workspace pixels moved per key press" default:"20"`
	ResizeStep      int  `help:"Workspace pixels resized per key press" default:"40"`
}

// RunCmd starts the canvas TUI
type RunCmd struct {
	CanvasFlags `embed:""`
	Viewer      string `help:"Command used to view the active document (overrides settings and $DOCDESK_VIEWER)"`
	Workspace   string `help:"Workspace to open (created when missing)" short:"w" default:"default"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI, container *Container) error {
	logging.Logger.Info("Starting docdesk canvas", "workspace", r.Workspace)

	opts, err := cli.modelOptions(container, r.CanvasFlags)
	if err != nil {
		return err
	}
	opts.WorkspaceName = r.Workspace
	if r.Viewer != "" {
		opts.Viewer = viewer.NewOpener(r.Viewer)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := container.WorkspaceService.GetOrCreateWorkspace(ctx, r.Workspace); err != nil {
		return err
	}

	p := tea.NewProgram(ui.NewModel(ctx, opts), tea.WithAltScreen())

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

// VersionCmd prints version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(cli *CLI) error {
	fmt.Println(cli.versionInfo)
	return nil
}
