package ports

import "github.com/renato0307/docdesk/internal/domain"

// SnapshotFile exports and imports workspace snapshots as files
type SnapshotFile interface {
	Read(path string) (domain.WorkspaceSnapshot, error)
	Write(path string, snapshot domain.WorkspaceSnapshot) error
}
