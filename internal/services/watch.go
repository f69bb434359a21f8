package services

import (
	"context"
	"fmt"

	"github.com/renato0307/docdesk/internal/domain"
	"github.com/renato0307/docdesk/internal/logging"
	"github.com/renato0307/docdesk/internal/ports"
)

// WatcherFactory creates a file watcher for one watch run
type WatcherFactory func() (ports.FileWatcher, error)

// WatchService keeps caddy states in line with their files on disk
type WatchService struct {
	newWatcher WatcherFactory
	workspaces *WorkspaceService
}

// NewWatchService creates a new WatchService
func NewWatchService(workspaces *WorkspaceService, newWatcher WatcherFactory) *WatchService {
	return &WatchService{
		newWatcher: newWatcher,
		workspaces: workspaces,
	}
}

// Watch follows the files of every caddy currently open in the workspace.
// The set of files is fixed when Watch is called; callers start a new watch
// after opening documents. The returned channel closes when ctx is done.
func (s *WatchService) Watch(ctx context.Context, name string) (<-chan WatchUpdate, error) {
	ws, err := s.workspaces.GetWorkspace(ctx, name)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, ws.DocumentCount())
	for _, doc := range ws.Documents() {
		paths = append(paths, doc.FilePath())
	}

	watcher, err := s.newWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	events, err := watcher.Watch(ctx, paths)
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch documents: %w", err)
	}

	logging.Logger.Info("Watching workspace documents", "workspace", name, "files", len(paths))

	updates := make(chan WatchUpdate, 16)
	go func() {
		defer close(updates)
		defer watcher.Close()
		for ev := range events {
			update, ok := s.HandleEvent(ctx, name, ev)
			if !ok {
				continue
			}
			select {
			case updates <- update:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}

// HandleEvent applies one file event to the workspace. A removed or renamed
// file puts its caddy in error; a modified file reloads it. It reports false
// when the event does not concern any open caddy.
func (s *WatchService) HandleEvent(ctx context.Context, name string, ev ports.FileEvent) (WatchUpdate, bool) {
	logging.Logger.Debug("File event", "workspace", name, "path", ev.Path, "operation", ev.Operation)

	ws, err := s.workspaces.GetWorkspace(ctx, name)
	if err != nil {
		return WatchUpdate{Err: err, Path: ev.Path}, true
	}
	caddy, ok := ws.DocumentByPath(ev.Path)
	if !ok || caddy.State() == domain.CaddyClosing {
		return WatchUpdate{}, false
	}

	update := WatchUpdate{DocumentID: caddy.ID(), Path: ev.Path}

	switch ev.Operation {
	case ports.FileRemoved, ports.FileRenamed:
		if caddy.State() == domain.CaddyError {
			return WatchUpdate{}, false
		}
		message := fmt.Sprintf("file %s", ev.Operation)
		if _, err := s.workspaces.MarkDocumentError(ctx, name, caddy.ID(), message); err != nil {
			update.Err = err
			return update, true
		}
		update.State = domain.CaddyError
	case ports.FileModified:
		reloaded, err := s.workspaces.ReloadDocument(ctx, name, caddy.ID())
		if err != nil {
			update.Err = err
			return update, true
		}
		update.State = reloaded.State()
	default:
		return WatchUpdate{}, false
	}

	return update, true
}
