package filewatcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/renato0307/docdesk/internal/logging"
	"github.com/renato0307/docdesk/internal/ports"
)

// FSNotifyWatcher implements ports.FileWatcher using fsnotify. It watches the
// parent directories so files replaced by atomic saves keep being tracked.
type FSNotifyWatcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
}

// Verify interface compliance at compile time
var _ ports.FileWatcher = (*FSNotifyWatcher)(nil)

// NewFSNotifyWatcher creates a new file watcher
func NewFSNotifyWatcher() (*FSNotifyWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &FSNotifyWatcher{watcher: w}, nil
}

// Watch starts monitoring paths and emits one event per relevant change.
// Watch may be called once per watcher.
func (w *FSNotifyWatcher) Watch(ctx context.Context, paths []string) (<-chan ports.FileEvent, error) {
	tracked := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		tracked[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	w.mu.Lock()
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			w.mu.Unlock()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	w.mu.Unlock()

	logging.Logger.Debug("Watching document files", "files", len(tracked), "directories", len(dirs))

	events := make(chan ports.FileEvent, 100)

	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if !tracked[filepath.Clean(event.Name)] {
					continue
				}

				var op ports.FileOperation
				switch {
				case event.Has(fsnotify.Remove):
					op = ports.FileRemoved
				case event.Has(fsnotify.Rename):
					op = ports.FileRenamed
				case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
					op = ports.FileModified
				default:
					continue
				}

				select {
				case events <- ports.FileEvent{Path: filepath.Clean(event.Name), Operation: op}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				logging.Logger.Warn("File watcher error", "error", err)
			}
		}
	}()

	return events, nil
}

// Close stops the watcher and closes the event channel
func (w *FSNotifyWatcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.watcher.Close()
}
