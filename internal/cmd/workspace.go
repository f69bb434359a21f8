package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/docdesk/internal/domain"
	"github.com/renato0307/docdesk/internal/logging"
	"github.com/renato0307/docdesk/internal/services"
)

// WorkspaceCmd manages workspaces
type WorkspaceCmd struct {
	Create WorkspaceCreateCmd `cmd:"create" help:"Create an empty workspace"`
	Del    WorkspaceDelCmd    `cmd:"del" help:"Delete a workspace"`
	Export WorkspaceExportCmd `cmd:"export" help:"Export a workspace to a JSON file"`
	Import WorkspaceImportCmd `cmd:"import" help:"Import a workspace from a JSON file"`
	List   WorkspaceListCmd   `cmd:"list" aliases:"ls" help:"List workspaces" default:"1"`
	Rename WorkspaceRenameCmd `cmd:"rename" help:"Rename a workspace"`
	Resize WorkspaceResizeCmd `cmd:"resize" help:"Change the workspace size"`
	Show   WorkspaceShowCmd   `cmd:"show" help:"Show a workspace and its documents"`
}

// WorkspaceCreateCmd creates a workspace
type WorkspaceCreateCmd struct {
	Height float64 `help:"Workspace height in pixels (default from settings)"`
	Mode   string  `help:"Initial layout mode: stacked, grid or freeform (default from settings)"`
	Name   string  `arg:"" help:"Workspace name"`
	Width  float64 `help:"Workspace width in pixels (default from settings)"`
}

// Run executes the create command
func (w *WorkspaceCreateCmd) Run(container *Container) error {
	var mode domain.LayoutMode
	if w.Mode != "" {
		parsed, err := domain.ParseLayoutMode(w.Mode)
		if err != nil {
			return err
		}
		mode = parsed
	}

	ws, err := container.WorkspaceService.CreateWorkspace(context.Background(), services.CreateWorkspaceParams{
		Height:     w.Height,
		LayoutMode: mode,
		Name:       w.Name,
		Width:      w.Width,
	})
	if err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}

	fmt.Printf("Workspace '%s' created (%s, %.0fx%.0f)\n",
		ws.Name(), ws.LayoutMode(), ws.WorkspaceSize().Width(), ws.WorkspaceSize().Height())
	return nil
}

// WorkspaceListCmd lists workspaces
type WorkspaceListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (w *WorkspaceListCmd) Run(container *Container) error {
	summaries, err := container.WorkspaceService.Summaries(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list workspaces: %w", err)
	}

	if w.Format == "json" {
		return printJSON(summaries)
	}

	if len(summaries) == 0 {
		fmt.Println("No workspaces")
		return nil
	}

	tw := newTabWriter()
	fmt.Fprintln(tw, "NAME\tMODE\tDOCS\tERRORS\tMISSING\tACTIVE\tMODIFIED")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			s.Name, s.LayoutMode, s.Documents, s.States[domain.CaddyError], s.Missing,
			s.ActiveTitle, formatTime(s.LastModified))
	}
	return tw.Flush()
}

// WorkspaceShowCmd shows one workspace
type WorkspaceShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Name   string `arg:"" help:"Workspace name"`
}

// Run executes the show command
func (w *WorkspaceShowCmd) Run(container *Container) error {
	ws, err := container.WorkspaceService.GetWorkspace(context.Background(), w.Name)
	if err != nil {
		return err
	}

	if w.Format == "json" {
		return printJSON(ws.Snapshot())
	}

	fmt.Printf("Workspace: %s (%s)\n", ws.Name(), ws.ID())
	fmt.Printf("Layout:    %s\n", ws.LayoutMode())
	fmt.Printf("Size:      %.0fx%.0f\n", ws.WorkspaceSize().Width(), ws.WorkspaceSize().Height())
	fmt.Printf("Modified:  %s\n", formatTime(ws.LastModified()))
	fmt.Println()

	if ws.DocumentCount() == 0 {
		fmt.Println("No documents open")
		return nil
	}
	printDocuments(ws)
	return nil
}

// WorkspaceDelCmd deletes a workspace
type WorkspaceDelCmd struct {
	Force bool   `help:"Force deletion without confirmation" short:"f"`
	Name  string `arg:"" help:"Name of the workspace to delete"`
}

// Run executes the del command
func (w *WorkspaceDelCmd) Run(container *Container) error {
	logging.Logger.Info("Executing workspace del command", "workspace", w.Name, "force", w.Force)
	ctx := context.Background()

	ws, err := container.WorkspaceService.GetWorkspace(ctx, w.Name)
	if err != nil {
		return err
	}

	if !w.Force {
		confirmed, err := confirmDeletion(ws)
		if err != nil {
			return err
		}
		if !confirmed {
			logging.Logger.Info("User cancelled workspace deletion", "workspace", w.Name)
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := container.WorkspaceService.DeleteWorkspace(ctx, w.Name); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	fmt.Printf("Workspace '%s' deleted\n", w.Name)
	return nil
}

func confirmDeletion(ws *domain.Workspace) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Delete workspace '%s'?", ws.Name())).
		Description(fmt.Sprintf("%d open documents will be closed. The files are not touched.", ws.DocumentCount())).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return confirmed, nil
}

// WorkspaceRenameCmd renames a workspace
type WorkspaceRenameCmd struct {
	Name    string `arg:"" help:"Current workspace name"`
	NewName string `arg:"" help:"New workspace name"`
}

// Run executes the rename command
func (w *WorkspaceRenameCmd) Run(container *Container) error {
	if _, err := container.WorkspaceService.RenameWorkspace(context.Background(), w.Name, w.NewName); err != nil {
		return fmt.Errorf("failed to rename workspace: %w", err)
	}
	fmt.Printf("Workspace '%s' renamed to '%s'\n", w.Name, w.NewName)
	return nil
}

// WorkspaceResizeCmd changes the workspace size
type WorkspaceResizeCmd struct {
	Height float64 `help:"Workspace height in pixels" required:""`
	Name   string  `arg:"" help:"Workspace name"`
	Width  float64 `help:"Workspace width in pixels" required:""`
}

// Run executes the resize command
func (w *WorkspaceResizeCmd) Run(container *Container) error {
	ws, err := container.WorkspaceService.ResizeWorkspace(context.Background(), w.Name, w.Width, w.Height)
	if err != nil {
		return fmt.Errorf("failed to resize workspace: %w", err)
	}
	fmt.Printf("Workspace '%s' resized to %.0fx%.0f\n", ws.Name(), ws.WorkspaceSize().Width(), ws.WorkspaceSize().Height())
	return nil
}

// WorkspaceExportCmd writes a workspace snapshot to a file
type WorkspaceExportCmd struct {
	Name string `arg:"" help:"Workspace name"`
	Out  string `help:"Destination file" short:"o" required:"" type:"path"`
}

// Run executes the export command
func (w *WorkspaceExportCmd) Run(container *Container) error {
	if err := container.WorkspaceService.ExportWorkspace(context.Background(), w.Name, w.Out); err != nil {
		return fmt.Errorf("failed to export workspace: %w", err)
	}
	fmt.Printf("Workspace '%s' exported to %s\n", w.Name, w.Out)
	return nil
}

// WorkspaceImportCmd restores a workspace from a snapshot file
type WorkspaceImportCmd struct {
	File string `arg:"" help:"Snapshot file" type:"existingfile"`
}

// Run executes the import command
func (w *WorkspaceImportCmd) Run(container *Container) error {
	ws, err := container.WorkspaceService.ImportWorkspace(context.Background(), w.File)
	if err != nil {
		return fmt.Errorf("failed to import workspace: %w", err)
	}
	fmt.Printf("Workspace '%s' imported with %d documents\n", ws.Name(), ws.DocumentCount())
	return nil
}
