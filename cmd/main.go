package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/docdesk/internal/cmd"
	"github.com/renato0307/docdesk/internal/config"
	"github.com/renato0307/docdesk/internal/ui"
)

// Build information injected at build time via ldflags
// Example: -ldflags="-X main.Version=v1.0.0 -X main.Commit=abc123 ..."
var (
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
	Version   = "dev"
)

// Tagline is the application's tagline used in help text
const Tagline = "Lay out and track open documents across workspaces"

func versionInfo() string {
	return fmt.Sprintf("docdesk %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}

func main() {
	ui.SetVersionInfo(ui.VersionInfo{
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Version:   Version,
	})

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	cli.SetVersionInfo(versionInfo())
	ctx := kong.Parse(&cli,
		kong.Name("docdesk"),
		kong.Description(Tagline),
		kong.Vars{
			"version": versionInfo(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	err = ctx.Run()
	cli.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
