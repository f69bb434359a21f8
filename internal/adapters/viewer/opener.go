package viewer

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/renato0307/docdesk/internal/logging"
	"github.com/renato0307/docdesk/internal/ports"
)

// Opener implements ports.DocumentViewer by starting an external program
type Opener struct {
	command string
	start   func(name string, args ...string) error
}

var _ ports.DocumentViewer = (*Opener)(nil)

// NewOpener creates an opener. command overrides every other lookup when set.
func NewOpener(command string) *Opener {
	return &Opener{
		command: command,
		start:   startDetached,
	}
}

// View opens path without waiting for the viewer to exit.
// Priority: command → $DOCDESK_VIEWER → platform default
func (o *Opener) View(path string) error {
	if path == "" {
		return fmt.Errorf("no path provided")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("document file is not available: %w", err)
	}

	name, args := o.findViewer(path)
	if name == "" {
		return fmt.Errorf("no suitable viewer found. Set --viewer, the viewer setting, or $DOCDESK_VIEWER")
	}

	logging.Logger.Info("Opening viewer", "viewer", name, "path", path)
	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("failed to start viewer: %w", err)
	}
	return nil
}

func (o *Opener) findViewer(path string) (string, []string) {
	if o.command != "" {
		return o.command, []string{path}
	}
	if viewer := os.Getenv("DOCDESK_VIEWER"); viewer != "" {
		return viewer, []string{path}
	}
	return findPlatformViewer(path)
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Warn("Viewer exited with error", "error", err, "viewer", name)
		}
	}()
	return nil
}
