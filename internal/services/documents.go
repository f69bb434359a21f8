package services

import (
	"context"
	"fmt"

	"github.com/renato0307/docdesk/internal/domain"
	"github.com/renato0307/docdesk/internal/logging"
)

// OpenDocument inspects a file and opens it in the workspace. Opening a file
// that is already open activates its caddy instead.
func (s *WorkspaceService) OpenDocument(ctx context.Context, name string, params OpenDocumentParams) (domain.DocumentCaddy, error) {
	logging.Logger.Info("Opening document", "workspace", name, "path", params.Path)

	var opened domain.DocumentCaddy
	_, err := s.update(ctx, name, func(ws *domain.Workspace) error {
		info, err := s.inspector.Inspect(ctx, params.Path)
		if err != nil {
			logging.Logger.Warn("Document not available", "path", params.Path, "error", err)
			return fmt.Errorf("failed to open document: %w", err)
		}

		title := params.Title
		if title == "" {
			title = info.Title
		}

		caddy, err := ws.AddDocument(info.Path, title)
		if err != nil {
			return err
		}
		if caddy.State() == domain.CaddyLoading {
			if err := ws.MarkDocumentReady(caddy.ID()); err != nil {
				return err
			}
		}
		if ws.LayoutMode() != domain.LayoutFreeform {
			ws.ApplyLayout(ws.CalculateCurrentLayout())
		}

		opened, _ = ws.Document(caddy.ID())
		return nil
	})
	if err != nil {
		return domain.DocumentCaddy{}, err
	}

	logging.Logger.Info("Document opened", "workspace", name, "id", opened.ID(), "title", opened.Title())
	return opened, nil
}

// CloseDocument removes a caddy from the workspace
func (s *WorkspaceService) CloseDocument(ctx context.Context, name, id string) (*domain.Workspace, error) {
	logging.Logger.Info("Closing document", "workspace", name, "id", id)

	ws, err := s.update(ctx, name, func(ws *domain.Workspace) error {
		if !ws.RemoveDocument(id) {
			return &domain.DocumentNotFoundError{DocumentID: id, WorkspaceID: ws.ID()}
		}
		if ws.LayoutMode() != domain.LayoutFreeform {
			ws.ApplyLayout(ws.CalculateCurrentLayout())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.engine.Forget(id)
	return ws, nil
}

// CloseAllDocuments empties the workspace
func (s *WorkspaceService) CloseAllDocuments(ctx context.Context, name string) (*domain.Workspace, error) {
	logging.Logger.Info("Closing all documents", "workspace", name)

	var closed []string
	ws, err := s.update(ctx, name, func(ws *domain.Workspace) error {
		for _, doc := range ws.Documents() {
			closed = append(closed, doc.ID())
		}
		ws.RemoveAllDocuments()
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.engine.Forget(closed...)
	return ws, nil
}

// ActivateDocument makes a caddy the active one
func (s *WorkspaceService) ActivateDocument(ctx context.Context, name, id string) (*domain.Workspace, error) {
	return s.update(ctx, name, func(ws *domain.Workspace) error {
		if err := ws.ActivateDocument(id); err != nil {
			return err
		}
		if ws.LayoutMode() != domain.LayoutGrid {
			ws.ApplyLayout(ws.CalculateCurrentLayout())
		}
		return nil
	})
}

// MoveDocument repositions a caddy, switching the workspace to freeform if needed
func (s *WorkspaceService) MoveDocument(ctx context.Context, name, id string, x, y float64) ([]domain.DocumentLayoutResult, error) {
	pos, err := domain.NewPosition(x, y)
	if err != nil {
		return nil, err
	}

	var results []domain.DocumentLayoutResult
	_, err = s.update(ctx, name, func(ws *domain.Workspace) error {
		var err error
		results, err = ws.MoveDocument(id, pos)
		return err
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ResizeDocument resizes a caddy, switching the workspace to freeform if needed
func (s *WorkspaceService) ResizeDocument(ctx context.Context, name, id string, width, height float64) ([]domain.DocumentLayoutResult, error) {
	dims, err := domain.NewDimensions(width, height)
	if err != nil {
		return nil, err
	}

	var results []domain.DocumentLayoutResult
	_, err = s.update(ctx, name, func(ws *domain.Workspace) error {
		var err error
		results, err = ws.ResizeDocument(id, dims)
		return err
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// MarkDocumentReady reports that a caddy finished loading
func (s *WorkspaceService) MarkDocumentReady(ctx context.Context, name, id string) (*domain.Workspace, error) {
	return s.update(ctx, name, func(ws *domain.Workspace) error {
		return ws.MarkDocumentReady(id)
	})
}

// MarkDocumentError reports that a caddy failed to load
func (s *WorkspaceService) MarkDocumentError(ctx context.Context, name, id, message string) (*domain.Workspace, error) {
	logging.Logger.Warn("Marking document as failed", "workspace", name, "id", id, "message", message)
	return s.update(ctx, name, func(ws *domain.Workspace) error {
		return ws.MarkDocumentError(id, message)
	})
}

// ReloadDocument puts a caddy back into loading and inspects its file again.
// The caddy ends up ready, or in error when the file is no longer available.
func (s *WorkspaceService) ReloadDocument(ctx context.Context, name, id string) (domain.DocumentCaddy, error) {
	logging.Logger.Info("Reloading document", "workspace", name, "id", id)

	var reloaded domain.DocumentCaddy
	_, err := s.update(ctx, name, func(ws *domain.Workspace) error {
		if err := ws.ReloadDocument(id); err != nil {
			return err
		}
		caddy, _ := ws.Document(id)

		if _, err := s.inspector.Inspect(ctx, caddy.FilePath()); err != nil {
			logging.Logger.Warn("Document reload failed", "id", id, "error", err)
			if err := ws.MarkDocumentError(id, err.Error()); err != nil {
				return err
			}
		} else if err := ws.MarkDocumentReady(id); err != nil {
			return err
		}

		reloaded, _ = ws.Document(id)
		return nil
	})
	if err != nil {
		return domain.DocumentCaddy{}, err
	}
	return reloaded, nil
}
