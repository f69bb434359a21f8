package storage

import (
	"fmt"

	"github.com/renato0307/docdesk/internal/domain"
)

// workspaceModelToDomain rebuilds a workspace from its rows. Caddies must be
// ordered by Position.
func workspaceModelToDomain(m WorkspaceModel) (*domain.Workspace, error) {
	size, err := domain.DimensionsFromValues(m.Width, m.Height)
	if err != nil {
		return nil, fmt.Errorf("workspace %s size: %w", m.ID, err)
	}

	docs := make([]domain.DocumentSnapshot, 0, len(m.Documents))
	for _, c := range m.Documents {
		d, err := caddyModelToSnapshot(c)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}

	return domain.RestoreWorkspace(domain.WorkspaceSnapshot{
		ActiveDocumentID: m.ActiveDocumentID,
		CreatedAt:        m.CreatedAt,
		Documents:        docs,
		ID:               m.ID,
		LastModified:     m.LastModified,
		LayoutMode:       domain.LayoutMode(m.LayoutMode),
		Name:             m.Name,
		WorkspaceSize:    size,
	})
}

func caddyModelToSnapshot(c CaddyModel) (domain.DocumentSnapshot, error) {
	pos, err := domain.NewPosition(c.X, c.Y)
	if err != nil {
		return domain.DocumentSnapshot{}, fmt.Errorf("caddy %s position: %w", c.ID, err)
	}
	dims, err := domain.DimensionsFromValues(c.Width, c.Height)
	if err != nil {
		return domain.DocumentSnapshot{}, fmt.Errorf("caddy %s dimensions: %w", c.ID, err)
	}
	return domain.DocumentSnapshot{
		CreatedAt:    c.CreatedAt,
		Dimensions:   dims,
		ErrorMessage: c.ErrorMessage,
		FilePath:     c.FilePath,
		ID:           c.ID,
		IsActive:     c.IsActive,
		LastModified: c.LastModified,
		Position:     pos,
		State:        domain.CaddyState(c.State),
		Title:        c.Title,
		ZIndex:       c.ZIndex,
	}, nil
}

// domainToWorkspaceModel converts a workspace to its rows. Times are stored in UTC.
func domainToWorkspaceModel(ws *domain.Workspace) WorkspaceModel {
	s := ws.Snapshot()
	m := WorkspaceModel{
		ActiveDocumentID: s.ActiveDocumentID,
		CreatedAt:        s.CreatedAt.UTC(),
		Height:           s.WorkspaceSize.Height(),
		ID:               s.ID,
		LastModified:     s.LastModified.UTC(),
		LayoutMode:       string(s.LayoutMode),
		Name:             s.Name,
		Width:            s.WorkspaceSize.Width(),
	}
	for i, d := range s.Documents {
		m.Documents = append(m.Documents, CaddyModel{
			CreatedAt:    d.CreatedAt.UTC(),
			ErrorMessage: d.ErrorMessage,
			FilePath:     d.FilePath,
			Height:       d.Dimensions.Height(),
			ID:           d.ID,
			IsActive:     d.IsActive,
			LastModified: d.LastModified.UTC(),
			Position:     i,
			State:        string(d.State),
			Title:        d.Title,
			Width:        d.Dimensions.Width(),
			WorkspaceID:  s.ID,
			X:            d.Position.X(),
			Y:            d.Position.Y(),
			ZIndex:       d.ZIndex,
		})
	}
	return m
}
