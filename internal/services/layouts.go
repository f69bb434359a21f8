package services

import (
	"context"
	"fmt"

	"github.com/renato0307/docdesk/internal/domain"
	"github.com/renato0307/docdesk/internal/layout"
	"github.com/renato0307/docdesk/internal/logging"
)

// SwitchLayoutMode changes the layout policy of a workspace
func (s *WorkspaceService) SwitchLayoutMode(ctx context.Context, name string, mode domain.LayoutMode) ([]domain.DocumentLayoutResult, error) {
	logging.Logger.Info("Switching layout mode", "workspace", name, "mode", mode)

	var results []domain.DocumentLayoutResult
	_, err := s.update(ctx, name, func(ws *domain.Workspace) error {
		var err error
		results, err = ws.SwitchLayoutMode(mode)
		if err != nil {
			return err
		}
		_, err = s.engine.CalculateLayout(mode, ws.Placements(), ws.WorkspaceSize(), ws.ActiveDocumentID())
		return err
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// AnimateLayoutMode switches the layout mode and returns the transition from
// the previous geometry, staggered per caddy
func (s *WorkspaceService) AnimateLayoutMode(ctx context.Context, name string, mode domain.LayoutMode) ([]layout.AnimatedLayoutResult, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	var animated []layout.AnimatedLayoutResult
	_, err := s.update(ctx, name, func(ws *domain.Workspace) error {
		var err error
		animated, err = s.engine.CalculateAnimatedLayout(mode, ws.Placements(), ws.WorkspaceSize(), ws.ActiveDocumentID())
		if err != nil {
			return err
		}
		_, err = ws.SwitchLayoutMode(mode)
		return err
	})
	if err != nil {
		return nil, err
	}
	return animated, nil
}

// Layout computes the visible layout of a workspace, validates it and
// suggests a mode. It does not modify the workspace.
func (s *WorkspaceService) Layout(ctx context.Context, name string) (LayoutReport, error) {
	ws, err := s.GetWorkspace(ctx, name)
	if err != nil {
		return LayoutReport{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	results, err := s.engine.CalculateOptimizedLayout(ws.LayoutMode(), ws.Placements(), ws.WorkspaceSize(), ws.ActiveDocumentID(), layout.OptimizationOptions{
		EnforceMinimumSize:  true,
		MaxDocumentsVisible: s.defaults.MaxDocumentsVisible,
		PrioritizeActive:    true,
	})
	if err != nil {
		return LayoutReport{}, fmt.Errorf("failed to calculate layout: %w", err)
	}

	return LayoutReport{
		Report:     s.engine.ValidateLayout(results, ws.WorkspaceSize()),
		Results:    results,
		Suggestion: s.engine.SuggestOptimalLayoutMode(ws.DocumentCount(), ws.WorkspaceSize(), ws.LayoutMode()),
		Workspace:  ws,
	}, nil
}

// ArrangeWithoutOverlap spreads the caddies so none overlap. Arranging is a
// manual edit, so the workspace switches to freeform first.
func (s *WorkspaceService) ArrangeWithoutOverlap(ctx context.Context, name string, padding float64) (ArrangeResult, error) {
	if padding < 0 {
		padding = s.defaults.OverlapPadding
	}
	logging.Logger.Info("Arranging documents", "workspace", name, "padding", padding)

	var result ArrangeResult
	ws, err := s.update(ctx, name, func(ws *domain.Workspace) error {
		if _, err := ws.SwitchLayoutMode(domain.LayoutFreeform); err != nil {
			return err
		}
		result.Results, result.Fallback = s.engine.CalculateNonOverlappingLayout(ws.Placements(), ws.WorkspaceSize(), padding)
		ws.ApplyLayout(result.Results)
		return nil
	})
	if err != nil {
		return ArrangeResult{}, err
	}

	if len(result.Fallback) > 0 {
		logging.Logger.Warn("Some documents kept their position", "workspace", name, "documents", result.Fallback)
	}
	result.Workspace = ws
	return result, nil
}

// SnapToGrid aligns every caddy to the grid. Like arranging, it switches the
// workspace to freeform.
func (s *WorkspaceService) SnapToGrid(ctx context.Context, name string, gridSize float64) ([]domain.DocumentLayoutResult, error) {
	var snapped []domain.DocumentLayoutResult
	_, err := s.update(ctx, name, func(ws *domain.Workspace) error {
		results, err := ws.SwitchLayoutMode(domain.LayoutFreeform)
		if err != nil {
			return err
		}
		snapped = s.engine.SnapToGrid(results, gridSize)
		ws.ApplyLayout(snapped)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to snap to grid: %w", err)
	}
	return snapped, nil
}
