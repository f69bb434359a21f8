package ports

import (
	"context"
	"time"
)

// FileInfo describes a document file on disk
type FileInfo struct {
	ModTime time.Time
	Path    string // absolute, cleaned
	Size    int64
	Title   string
}

// FileInspector resolves and validates document files before they are opened.
// Missing or unreadable files return an error wrapping domain.ErrDocumentUnavailable.
type FileInspector interface {
	Inspect(ctx context.Context, path string) (FileInfo, error)
}
