package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/docdesk/internal/adapters/viewer"
	"github.com/renato0307/docdesk/internal/domain"
	"github.com/renato0307/docdesk/internal/ports"
	"github.com/renato0307/docdesk/internal/services"
)

// DocsCmd manages the documents of a workspace
type DocsCmd struct {
	Activate DocsActivateCmd `cmd:"activate" help:"Bring a document to the front"`
	Close    DocsCloseCmd    `cmd:"close" help:"Close a document"`
	CloseAll DocsCloseAllCmd `cmd:"close-all" help:"Close every document"`
	Fail     DocsFailCmd     `cmd:"fail" help:"Mark a document as failed to load"`
	Move     DocsMoveCmd     `cmd:"move" help:"Move a document (switches to freeform)"`
	Open     DocsOpenCmd     `cmd:"open" help:"Open a file in a workspace"`
	Ready    DocsReadyCmd    `cmd:"ready" help:"Mark a loading document as ready"`
	Reload   DocsReloadCmd   `cmd:"reload" help:"Reload a document from disk"`
	Resize   DocsResizeCmd   `cmd:"resize" help:"Resize a document (switches to freeform)"`
	View     DocsViewCmd     `cmd:"view" help:"Open a document in an external viewer"`
}

// DocRef names a document inside a workspace
type DocRef struct {
	Workspace string `arg:"" help:"Workspace name"`
	ID        string `arg:"" help:"Document ID"`
}

// DocsOpenCmd opens a file
type DocsOpenCmd struct {
	Workspace string `arg:"" help:"Workspace name (created when missing)"`
	Path      string `arg:"" help:"File to open"`
	Title     string `help:"Display title (default: derived from the file name)" short:"t"`
}

// Run executes the open command
func (d *DocsOpenCmd) Run(container *Container) error {
	ctx := context.Background()
	if _, err := container.WorkspaceService.GetOrCreateWorkspace(ctx, d.Workspace); err != nil {
		return err
	}

	doc, err := container.WorkspaceService.OpenDocument(ctx, d.Workspace, services.OpenDocumentParams{
		Path:  d.Path,
		Title: d.Title,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Opened '%s' as %s\n", doc.Title(), doc.ID())
	return nil
}

// DocsCloseCmd closes one document
type DocsCloseCmd struct {
	DocRef `embed:""`
}

// Run executes the close command
func (d *DocsCloseCmd) Run(container *Container) error {
	if _, err := container.WorkspaceService.CloseDocument(context.Background(), d.Workspace, d.ID); err != nil {
		return err
	}
	fmt.Printf("Closed %s\n", d.ID)
	return nil
}

// DocsCloseAllCmd closes every document of a workspace
type DocsCloseAllCmd struct {
	Workspace string `arg:"" help:"Workspace name"`
}

// Run executes the close-all command
func (d *DocsCloseAllCmd) Run(container *Container) error {
	if _, err := container.WorkspaceService.CloseAllDocuments(context.Background(), d.Workspace); err != nil {
		return err
	}
	fmt.Printf("Closed all documents in '%s'\n", d.Workspace)
	return nil
}

// DocsActivateCmd activates a document
type DocsActivateCmd struct {
	DocRef `embed:""`
}

// Run executes the activate command
func (d *DocsActivateCmd) Run(container *Container) error {
	if _, err := container.WorkspaceService.ActivateDocument(context.Background(), d.Workspace, d.ID); err != nil {
		return err
	}
	fmt.Printf("Activated %s\n", d.ID)
	return nil
}

// DocsMoveCmd moves a document
type DocsMoveCmd struct {
	DocRef `embed:""`
	X      float64 `arg:"" help:"New left edge"`
	Y      float64 `arg:"" help:"New top edge"`
}

// Run executes the move command
func (d *DocsMoveCmd) Run(container *Container) error {
	results, err := container.WorkspaceService.MoveDocument(context.Background(), d.Workspace, d.ID, d.X, d.Y)
	if err != nil {
		return err
	}
	printResults(results)
	return nil
}

// DocsResizeCmd resizes a document
type DocsResizeCmd struct {
	DocRef `embed:""`
	Width  float64 `arg:"" help:"New width"`
	Height float64 `arg:"" help:"New height"`
}

// Run executes the resize command
func (d *DocsResizeCmd) Run(container *Container) error {
	results, err := container.WorkspaceService.ResizeDocument(context.Background(), d.Workspace, d.ID, d.Width, d.Height)
	if err != nil {
		return err
	}
	printResults(results)
	return nil
}

// DocsReadyCmd marks a document ready
type DocsReadyCmd struct {
	DocRef `embed:""`
}

// Run executes the ready command
func (d *DocsReadyCmd) Run(container *Container) error {
	if _, err := container.WorkspaceService.MarkDocumentReady(context.Background(), d.Workspace, d.ID); err != nil {
		return err
	}
	fmt.Printf("%s is ready\n", d.ID)
	return nil
}

// DocsFailCmd marks a document as failed
type DocsFailCmd struct {
	DocRef  `embed:""`
	Message string `arg:"" help:"Error message shown on the document"`
}

// Run executes the fail command
func (d *DocsFailCmd) Run(container *Container) error {
	if _, err := container.WorkspaceService.MarkDocumentError(context.Background(), d.Workspace, d.ID, d.Message); err != nil {
		return err
	}
	fmt.Printf("%s marked as failed: %s\n", d.ID, d.Message)
	return nil
}

// DocsReloadCmd reloads a document
type DocsReloadCmd struct {
	DocRef `embed:""`
}

// Run executes the reload command
func (d *DocsReloadCmd) Run(container *Container) error {
	doc, err := container.WorkspaceService.ReloadDocument(context.Background(), d.Workspace, d.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Reloaded '%s': %s %s\n", doc.Title(), doc.State().Symbol(), doc.State())
	if msg := doc.ErrorMessage(); msg != "" {
		fmt.Printf("  %s\n", msg)
	}
	return nil
}

// DocsViewCmd hands a document's file to an external viewer
type DocsViewCmd struct {
	DocRef `embed:""`
	Viewer string `help:"Viewer command (overrides settings and $DOCDESK_VIEWER)"`
}

// Run executes the view command
func (d *DocsViewCmd) Run(container *Container) error {
	ws, err := container.WorkspaceService.GetWorkspace(context.Background(), d.Workspace)
	if err != nil {
		return err
	}
	doc, ok := ws.Document(d.ID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, d.ID)
	}

	var v ports.DocumentViewer = container.Viewer
	if d.Viewer != "" {
		v = viewer.NewOpener(d.Viewer)
	}
	if err := v.View(doc.FilePath()); err != nil {
		return err
	}
	fmt.Printf("Opened '%s' (%s)\n", doc.Title(), doc.FilePath())
	return nil
}
