package services

import (
	"time"

	"github.com/renato0307/docdesk/internal/domain"
	"github.com/renato0307/docdesk/internal/layout"
)

// WorkspaceDefaults are applied to workspaces created without explicit values
type WorkspaceDefaults struct {
	LayoutMode          domain.LayoutMode
	MaxDocumentsVisible int
	OverlapPadding      float64
	Size                domain.Dimensions
}

// CreateWorkspaceParams contains parameters for creating a new workspace.
// Zero values fall back to WorkspaceDefaults.
type CreateWorkspaceParams struct {
	Height     float64
	LayoutMode domain.LayoutMode
	Name       string
	Width      float64
}

// OpenDocumentParams contains parameters for opening a document
type OpenDocumentParams struct {
	Path  string
	Title string // empty derives the title from the file name
}

// WorkspaceSummary is the listing view of a workspace
type WorkspaceSummary struct {
	ActiveTitle  string
	Documents    int
	ID           string
	LastModified time.Time
	LayoutMode   domain.LayoutMode
	Missing      int // documents whose file is gone
	Name         string
	States       map[domain.CaddyState]int
}

// ArrangeResult is the outcome of a non-overlapping arrangement
type ArrangeResult struct {
	Fallback  []string // caddies that kept their position
	Results   []domain.DocumentLayoutResult
	Workspace *domain.Workspace
}

// LayoutReport is the current layout of a workspace plus its validation
type LayoutReport struct {
	Report     layout.ValidationReport
	Results    []domain.DocumentLayoutResult
	Suggestion domain.LayoutMode
	Workspace  *domain.Workspace
}

// WatchUpdate reports a caddy state change caused by a file event
type WatchUpdate struct {
	DocumentID string
	Err        error
	Path       string
	State      domain.CaddyState
}
