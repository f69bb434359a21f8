package ports

import (
	"context"

	"github.com/renato0307/docdesk/internal/domain"
)

// WorkspaceReader reads persisted workspaces
type WorkspaceReader interface {
	Get(ctx context.Context, id string) (*domain.Workspace, error)
	GetByName(ctx context.Context, name string) (*domain.Workspace, error)
	List(ctx context.Context) ([]*domain.Workspace, error)
}

// WorkspaceWriter stores and deletes workspaces
type WorkspaceWriter interface {
	Delete(ctx context.Context, id string) error
	Save(ctx context.Context, ws *domain.Workspace) error
}

// WorkspaceRepository is the composite interface
type WorkspaceRepository interface {
	WorkspaceReader
	WorkspaceWriter
	Close() error
}
