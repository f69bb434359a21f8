package cmd

import (
	"fmt"
	"time"

	"github.com/renato0307/docdesk/internal/adapters/files"
	"github.com/renato0307/docdesk/internal/adapters/filewatcher"
	"github.com/renato0307/docdesk/internal/adapters/snapshotfile"
	"github.com/renato0307/docdesk/internal/adapters/storage"
	"github.com/renato0307/docdesk/internal/adapters/viewer"
	"github.com/renato0307/docdesk/internal/config"
	"github.com/renato0307/docdesk/internal/domain"
	"github.com/renato0307/docdesk/internal/layout"
	"github.com/renato0307/docdesk/internal/ports"
	"github.com/renato0307/docdesk/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Adapters
	Viewer ports.DocumentViewer

	// Services
	WatchService     *services.WatchService // nil when file watching is disabled
	WorkspaceService *services.WorkspaceService

	// Internal - for cleanup only
	repo ports.WorkspaceRepository
}

// ContainerOptions are the settings that shape the services
type ContainerOptions struct {
	DBPath             string
	Defaults           services.WorkspaceDefaults
	DocumentExtensions []string
	Engine             layout.Config
	Viewer             string // external viewer command, empty for the platform default
	WatchFiles         bool
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = config.GetDBPath()
	}
	repo, err := storage.NewSQLiteRepository(dbPath)
	if err != nil {
		return nil, err
	}

	workspaceService := services.NewWorkspaceService(
		repo,
		files.NewInspector(opts.DocumentExtensions),
		snapshotfile.NewJSONFile(),
		layout.NewEngine(opts.Engine),
		opts.Defaults,
	)

	var watchService *services.WatchService
	if opts.WatchFiles {
		watchService = services.NewWatchService(workspaceService, newFileWatcher)
	}

	return &Container{
		Viewer:           viewer.NewOpener(opts.Viewer),
		WatchService:     watchService,
		WorkspaceService: workspaceService,
		repo:             repo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}

func newFileWatcher() (ports.FileWatcher, error) {
	w, err := filewatcher.NewFSNotifyWatcher()
	if err != nil {
		return nil, err
	}
	return w, nil
}

// containerOptions resolves the service settings from settings.json, falling
// back to the built-in defaults
func containerOptions(s *config.Settings) (ContainerOptions, error) {
	if s == nil {
		s = &config.Settings{}
	}

	mode := domain.LayoutMode(config.DefaultLayoutMode)
	if s.DefaultLayoutMode != "" {
		parsed, err := domain.ParseLayoutMode(s.DefaultLayoutMode)
		if err != nil {
			return ContainerOptions{}, fmt.Errorf("invalid default_layout_mode in settings.json: %w", err)
		}
		mode = parsed
	}

	size, err := domain.NewDimensions(
		float64(config.IntOr(s.DefaultWorkspaceWidth, config.DefaultWorkspaceWidth)),
		float64(config.IntOr(s.DefaultWorkspaceHeight, config.DefaultWorkspaceHeight)),
	)
	if err != nil {
		return ContainerOptions{}, fmt.Errorf("invalid default workspace size in settings.json: %w", err)
	}

	return ContainerOptions{
		Defaults: services.WorkspaceDefaults{
			LayoutMode:          mode,
			MaxDocumentsVisible: config.IntOr(s.MaxDocumentsVisible, config.DefaultMaxDocumentsVisible),
			OverlapPadding:      float64(config.IntOr(s.OverlapPadding, config.DefaultOverlapPadding)),
			Size:                size,
		},
		DocumentExtensions: s.DocumentExtensions,
		Engine: layout.Config{
			GridSize:        float64(config.IntOr(s.GridSize, config.DefaultGridSize)),
			StaggerInterval: time.Duration(config.IntOr(s.StaggerIntervalMs, config.DefaultStaggerIntervalMs)) * time.Millisecond,
		},
		Viewer:     s.Viewer,
		WatchFiles: config.BoolOr(s.WatchFiles, true),
	}, nil
}
