package snapshotfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/renato0307/docdesk/internal/domain"
	"github.com/renato0307/docdesk/internal/logging"
	"github.com/renato0307/docdesk/internal/ports"
)

// JSONFile implements ports.SnapshotFile with indented JSON files guarded by
// an advisory lock, so an export never interleaves with a concurrent import
type JSONFile struct{}

// Verify interface compliance at compile time
var _ ports.SnapshotFile = (*JSONFile)(nil)

// NewJSONFile creates a JSONFile
func NewJSONFile() *JSONFile {
	return &JSONFile{}
}

// Write stores the snapshot at path, replacing any previous content
func (f *JSONFile) Write(path string, snapshot domain.WorkspaceSnapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file, true); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	logging.Logger.Debug("Snapshot written", "path", path, "workspace", snapshot.Name, "documents", len(snapshot.Documents))
	return nil
}

// Read loads a snapshot from path. Structural validation is left to
// domain.RestoreWorkspace.
func (f *JSONFile) Read(path string) (domain.WorkspaceSnapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.WorkspaceSnapshot{}, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file, false); err != nil {
		return domain.WorkspaceSnapshot{}, fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	var snapshot domain.WorkspaceSnapshot
	if err := json.NewDecoder(file).Decode(&snapshot); err != nil {
		return domain.WorkspaceSnapshot{}, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	return snapshot, nil
}
