package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/docdesk/internal/config"
	"github.com/renato0307/docdesk/internal/domain"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestContainerOptions_Defaults(t *testing.T) {
	opts, err := containerOptions(nil)

	require.NoError(t, err)
	assert.Equal(t, domain.LayoutStacked, opts.Defaults.LayoutMode)
	assert.Equal(t, 1920.0, opts.Defaults.Size.Width())
	assert.Equal(t, 1080.0, opts.Defaults.Size.Height())
	assert.Equal(t, 10.0, opts.Defaults.OverlapPadding)
	assert.Zero(t, opts.Defaults.MaxDocumentsVisible)
	assert.Equal(t, 20.0, opts.Engine.GridSize)
	assert.Equal(t, 50*time.Millisecond, opts.Engine.StaggerInterval)
	assert.True(t, opts.WatchFiles)
}

func TestContainerOptions_FromSettings(t *testing.T) {
	opts, err := containerOptions(&config.Settings{
		DefaultLayoutMode:      "Grid",
		DefaultWorkspaceHeight: intPtr(900),
		DefaultWorkspaceWidth:  intPtr(1600),
		DocumentExtensions:     config.StringArray{".pdf"},
		GridSize:               intPtr(8),
		MaxDocumentsVisible:    intPtr(6),
		OverlapPadding:         intPtr(4),
		StaggerIntervalMs:      intPtr(10),
		WatchFiles:             boolPtr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.LayoutGrid, opts.Defaults.LayoutMode)
	assert.Equal(t, 1600.0, opts.Defaults.Size.Width())
	assert.Equal(t, 900.0, opts.Defaults.Size.Height())
	assert.Equal(t, []string{".pdf"}, opts.DocumentExtensions)
	assert.Equal(t, 8.0, opts.Engine.GridSize)
	assert.Equal(t, 6, opts.Defaults.MaxDocumentsVisible)
	assert.Equal(t, 4.0, opts.Defaults.OverlapPadding)
	assert.Equal(t, 10*time.Millisecond, opts.Engine.StaggerInterval)
	assert.False(t, opts.WatchFiles)
}

func TestContainerOptions_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		settings config.Settings
		wantErr  error
	}{
		{"unknown mode", config.Settings{DefaultLayoutMode: "tiles"}, domain.ErrUnknownLayoutMode},
		{"too small", config.Settings{DefaultWorkspaceWidth: intPtr(10)}, domain.ErrInvalidGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := containerOptions(&tt.settings)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name      string
		watch     bool
		wantWatch bool
	}{
		{"with watcher", true, true},
		{"without watcher", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container, err := NewContainer(ContainerOptions{
				DBPath:     filepath.Join(t.TempDir(), "state.db"),
				WatchFiles: tt.watch,
			})
			require.NoError(t, err)
			t.Cleanup(func() { _ = container.Close() })

			assert.NotNil(t, container.WorkspaceService)
			assert.Equal(t, tt.wantWatch, container.WatchService != nil)
		})
	}
}
