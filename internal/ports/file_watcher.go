package ports

import "context"

// FileOperation is the kind of change seen on a watched file
type FileOperation int

const (
	FileModified FileOperation = iota
	FileRemoved
	FileRenamed
)

func (op FileOperation) String() string {
	switch op {
	case FileModified:
		return "modified"
	case FileRemoved:
		return "removed"
	case FileRenamed:
		return "renamed"
	}
	return "unknown"
}

// FileEvent is a change to one watched file
type FileEvent struct {
	Operation FileOperation
	Path      string
}

// FileWatcher reports changes to a set of document files.
// The event channel closes when ctx is done or the watcher is closed.
type FileWatcher interface {
	Watch(ctx context.Context, paths []string) (<-chan FileEvent, error)
	Close() error
}
