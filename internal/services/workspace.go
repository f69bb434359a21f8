package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/docdesk/internal/domain"
	"github.com/renato0307/docdesk/internal/layout"
	"github.com/renato0307/docdesk/internal/logging"
	"github.com/renato0307/docdesk/internal/ports"
)

// maxConcurrentInspections bounds file checks in Summaries
const maxConcurrentInspections = 8

// WorkspaceService handles workspace and document operations. Every mutation
// loads the workspace, applies the change and saves it before returning.
type WorkspaceService struct {
	defaults  WorkspaceDefaults
	engine    *layout.Engine
	inspector ports.FileInspector
	mu        sync.Mutex
	repo      ports.WorkspaceRepository
	snapshots ports.SnapshotFile
}

// NewWorkspaceService creates a new WorkspaceService
func NewWorkspaceService(
	repo ports.WorkspaceRepository,
	inspector ports.FileInspector,
	snapshots ports.SnapshotFile,
	engine *layout.Engine,
	defaults WorkspaceDefaults,
) *WorkspaceService {
	if defaults.LayoutMode == "" {
		defaults.LayoutMode = domain.LayoutStacked
	}
	if defaults.Size.IsZero() {
		defaults.Size, _ = domain.NewDimensions(1920, 1080)
	}
	return &WorkspaceService{
		defaults:  defaults,
		engine:    engine,
		inspector: inspector,
		repo:      repo,
		snapshots: snapshots,
	}
}

// Defaults returns the defaults applied to new workspaces
func (s *WorkspaceService) Defaults() WorkspaceDefaults {
	return s.defaults
}

// CreateWorkspace creates and persists an empty workspace
func (s *WorkspaceService) CreateWorkspace(ctx context.Context, params CreateWorkspaceParams) (*domain.Workspace, error) {
	logging.Logger.Info("Creating workspace", "name", params.Name, "mode", params.LayoutMode)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.GetByName(ctx, params.Name); err == nil {
		return nil, fmt.Errorf("workspace %s: %w", params.Name, domain.ErrWorkspaceExists)
	} else if !errors.Is(err, domain.ErrWorkspaceNotFound) {
		return nil, fmt.Errorf("failed to check workspace: %w", err)
	}

	ws, err := s.newWorkspace(params)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, ws); err != nil {
		logging.Logger.Error("Failed to save workspace", "name", params.Name, "error", err)
		return nil, fmt.Errorf("failed to save workspace: %w", err)
	}

	logging.Logger.Info("Workspace created", "id", ws.ID(), "name", ws.Name())
	return ws, nil
}

// GetOrCreateWorkspace loads a workspace, creating it with defaults when missing
func (s *WorkspaceService) GetOrCreateWorkspace(ctx context.Context, name string) (*domain.Workspace, error) {
	ws, err := s.GetWorkspace(ctx, name)
	if err == nil {
		return ws, nil
	}
	if !errors.Is(err, domain.ErrWorkspaceNotFound) {
		return nil, err
	}
	return s.CreateWorkspace(ctx, CreateWorkspaceParams{Name: name})
}

// GetWorkspace loads a workspace by name
func (s *WorkspaceService) GetWorkspace(ctx context.Context, name string) (*domain.Workspace, error) {
	ws, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}
	return ws, nil
}

// ListWorkspaces returns every workspace, most recently modified first
func (s *WorkspaceService) ListWorkspaces(ctx context.Context) ([]*domain.Workspace, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return list, nil
}

// Summaries lists every workspace and checks its document files concurrently
func (s *WorkspaceService) Summaries(ctx context.Context) ([]WorkspaceSummary, error) {
	list, err := s.ListWorkspaces(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]WorkspaceSummary, len(list))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentInspections)

	for i, ws := range list {
		summaries[i] = summarize(ws)
		for _, doc := range ws.Documents() {
			g.Go(func() error {
				_, err := s.inspector.Inspect(gctx, doc.FilePath())
				if err == nil {
					return nil
				}
				if !errors.Is(err, domain.ErrDocumentUnavailable) {
					return err
				}
				mu.Lock()
				summaries[i].Missing++
				mu.Unlock()
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to inspect documents: %w", err)
	}
	return summaries, nil
}

// DeleteWorkspace removes a workspace and its caddies
func (s *WorkspaceService) DeleteWorkspace(ctx context.Context, name string) error {
	logging.Logger.Info("Deleting workspace", "name", name)

	s.mu.Lock()
	defer s.mu.Unlock()

	ws, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to load workspace: %w", err)
	}
	if err := s.repo.Delete(ctx, ws.ID()); err != nil {
		logging.Logger.Error("Failed to delete workspace", "name", name, "error", err)
		return fmt.Errorf("failed to delete workspace: %w", err)
	}
	for _, doc := range ws.Documents() {
		s.engine.Forget(doc.ID())
	}

	logging.Logger.Info("Workspace deleted", "name", name)
	return nil
}

// RenameWorkspace changes a workspace name
func (s *WorkspaceService) RenameWorkspace(ctx context.Context, name, newName string) (*domain.Workspace, error) {
	logging.Logger.Info("Renaming workspace", "name", name, "newName", newName)

	if name != newName {
		if _, err := s.repo.GetByName(ctx, newName); err == nil {
			return nil, fmt.Errorf("workspace %s: %w", newName, domain.ErrWorkspaceExists)
		} else if !errors.Is(err, domain.ErrWorkspaceNotFound) {
			return nil, fmt.Errorf("failed to check workspace: %w", err)
		}
	}

	return s.update(ctx, name, func(ws *domain.Workspace) error {
		return ws.Rename(newName)
	})
}

// ResizeWorkspace changes the canvas size and re-lays out the caddies
func (s *WorkspaceService) ResizeWorkspace(ctx context.Context, name string, width, height float64) (*domain.Workspace, error) {
	size, err := domain.NewDimensions(width, height)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, name, func(ws *domain.Workspace) error {
		_, err := ws.SetWorkspaceSize(size)
		return err
	})
}

// ExportWorkspace writes a workspace snapshot to path
func (s *WorkspaceService) ExportWorkspace(ctx context.Context, name, path string) error {
	ws, err := s.GetWorkspace(ctx, name)
	if err != nil {
		return err
	}
	if err := s.snapshots.Write(path, ws.Snapshot()); err != nil {
		return fmt.Errorf("failed to export workspace: %w", err)
	}
	logging.Logger.Info("Workspace exported", "name", name, "path", path)
	return nil
}

// ImportWorkspace restores a snapshot file as a new workspace
func (s *WorkspaceService) ImportWorkspace(ctx context.Context, path string) (*domain.Workspace, error) {
	snapshot, err := s.snapshots.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	ws, err := domain.RestoreWorkspace(snapshot)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.GetByName(ctx, ws.Name()); err == nil {
		return nil, fmt.Errorf("workspace %s: %w", ws.Name(), domain.ErrWorkspaceExists)
	} else if !errors.Is(err, domain.ErrWorkspaceNotFound) {
		return nil, fmt.Errorf("failed to check workspace: %w", err)
	}
	if _, err := s.repo.Get(ctx, ws.ID()); err == nil {
		return nil, fmt.Errorf("workspace id %s: %w", ws.ID(), domain.ErrWorkspaceExists)
	} else if !errors.Is(err, domain.ErrWorkspaceNotFound) {
		return nil, fmt.Errorf("failed to check workspace: %w", err)
	}

	if err := s.repo.Save(ctx, ws); err != nil {
		return nil, fmt.Errorf("failed to save workspace: %w", err)
	}
	logging.Logger.Info("Workspace imported", "name", ws.Name(), "documents", ws.DocumentCount())
	return ws, nil
}

// update runs fn on the stored workspace and saves the result
func (s *WorkspaceService) update(ctx context.Context, name string, fn func(ws *domain.Workspace) error) (*domain.Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}
	if err := fn(ws); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, ws); err != nil {
		logging.Logger.Error("Failed to save workspace", "name", name, "error", err)
		return nil, fmt.Errorf("failed to save workspace: %w", err)
	}
	return ws, nil
}

func (s *WorkspaceService) newWorkspace(params CreateWorkspaceParams) (*domain.Workspace, error) {
	size := s.defaults.Size
	if params.Width != 0 || params.Height != 0 {
		width, height := params.Width, params.Height
		if width == 0 {
			width = size.Width()
		}
		if height == 0 {
			height = size.Height()
		}
		d, err := domain.NewDimensions(width, height)
		if err != nil {
			return nil, err
		}
		size = d
	}

	mode := params.LayoutMode
	if mode == "" {
		mode = s.defaults.LayoutMode
	}
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	return domain.NewWorkspace(params.Name, size, domain.WithLayoutMode(mode))
}

func summarize(ws *domain.Workspace) WorkspaceSummary {
	summary := WorkspaceSummary{
		Documents:    ws.DocumentCount(),
		ID:           ws.ID(),
		LastModified: ws.LastModified(),
		LayoutMode:   ws.LayoutMode(),
		Name:         ws.Name(),
		States:       make(map[domain.CaddyState]int),
	}
	for _, doc := range ws.Documents() {
		summary.States[doc.State()]++
	}
	if active, ok := ws.ActiveDocument(); ok {
		summary.ActiveTitle = active.Title()
	}
	return summary
}
