package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/docdesk/internal/config"
	"github.com/renato0307/docdesk/internal/domain"
	"github.com/renato0307/docdesk/internal/ports/mocks"
)

func newTestContainer(t *testing.T) *Container {
	t.Helper()
	t.Setenv("DOCDESK_HOME", t.TempDir())
	opts, err := containerOptions(nil)
	require.NoError(t, err)
	opts.WatchFiles = false

	container, err := NewContainer(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })
	return container
}

func writeFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(name), 0644))
	return path
}

func TestCommands_DocumentLifecycle(t *testing.T) {
	ctx := context.Background()
	container := newTestContainer(t)
	svc := container.WorkspaceService

	require.NoError(t, (&WorkspaceCreateCmd{Name: "research", Mode: "grid"}).Run(container))
	require.NoError(t, (&DocsOpenCmd{Workspace: "research", Path: writeFile(t, "a.pdf")}).Run(container))
	require.NoError(t, (&DocsOpenCmd{Workspace: "research", Path: writeFile(t, "b.pdf"), Title: "Bee"}).Run(container))

	ws, err := svc.GetWorkspace(ctx, "research")
	require.NoError(t, err)
	require.Equal(t, 2, ws.DocumentCount())
	docs := ws.Documents()
	assert.Equal(t, "Bee", docs[1].Title())

	require.NoError(t, (&DocsActivateCmd{DocRef: DocRef{Workspace: "research", ID: docs[1].ID()}}).Run(container))
	require.NoError(t, (&DocsMoveCmd{DocRef: DocRef{Workspace: "research", ID: docs[1].ID()}, X: 40, Y: 60}).Run(container))
	require.NoError(t, (&DocsFailCmd{DocRef: DocRef{Workspace: "research", ID: docs[0].ID()}, Message: "corrupt"}).Run(container))

	ws, err = svc.GetWorkspace(ctx, "research")
	require.NoError(t, err)
	assert.Equal(t, domain.LayoutFreeform, ws.LayoutMode())
	assert.Equal(t, docs[1].ID(), ws.ActiveDocumentID())
	moved, _ := ws.Document(docs[1].ID())
	assert.Equal(t, 40.0, moved.Position().X())
	failed, _ := ws.Document(docs[0].ID())
	assert.Equal(t, domain.CaddyError, failed.State())

	require.NoError(t, (&DocsReloadCmd{DocRef: DocRef{Workspace: "research", ID: docs[0].ID()}}).Run(container))
	require.NoError(t, (&DocsCloseCmd{DocRef: DocRef{Workspace: "research", ID: docs[0].ID()}}).Run(container))
	require.NoError(t, (&DocsCloseAllCmd{Workspace: "research"}).Run(container))

	ws, err = svc.GetWorkspace(ctx, "research")
	require.NoError(t, err)
	assert.Zero(t, ws.DocumentCount())
}

func TestCommands_DocsOpenCreatesWorkspace(t *testing.T) {
	container := newTestContainer(t)

	require.NoError(t, (&DocsOpenCmd{Workspace: "scratch", Path: writeFile(t, "notes.md")}).Run(container))

	ws, err := container.WorkspaceService.GetWorkspace(context.Background(), "scratch")
	require.NoError(t, err)
	assert.Equal(t, 1, ws.DocumentCount())
}

func TestCommands_Layout(t *testing.T) {
	ctx := context.Background()
	container := newTestContainer(t)
	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		require.NoError(t, (&DocsOpenCmd{Workspace: "desk", Path: writeFile(t, name)}).Run(container))
	}

	require.NoError(t, (&LayoutModeCmd{Workspace: "desk", Mode: "grid"}).Run(container))
	require.NoError(t, (&LayoutShowCmd{Workspace: "desk", Format: "json"}).Run(container))
	require.NoError(t, (&LayoutSuggestCmd{Workspace: "desk"}).Run(container))
	require.NoError(t, (&LayoutValidateCmd{Workspace: "desk"}).Run(container))
	require.NoError(t, (&LayoutAnimateCmd{Workspace: "desk", Mode: "stacked"}).Run(container))
	require.NoError(t, (&LayoutArrangeCmd{Workspace: "desk", Padding: -1}).Run(container))
	require.NoError(t, (&LayoutSnapCmd{Workspace: "desk", Grid: 40}).Run(container))

	ws, err := container.WorkspaceService.GetWorkspace(ctx, "desk")
	require.NoError(t, err)
	assert.Equal(t, domain.LayoutFreeform, ws.LayoutMode())
	for _, d := range ws.Documents() {
		assert.Zero(t, int(d.Position().X())%40)
		assert.Zero(t, int(d.Position().Y())%40)
	}

	assert.ErrorIs(t, (&LayoutModeCmd{Workspace: "desk", Mode: "tiles"}).Run(container), domain.ErrUnknownLayoutMode)
}

func TestCommands_WorkspaceManagement(t *testing.T) {
	ctx := context.Background()
	container := newTestContainer(t)
	out := filepath.Join(t.TempDir(), "research.json")

	require.NoError(t, (&WorkspaceCreateCmd{Name: "research"}).Run(container))
	require.NoError(t, (&DocsOpenCmd{Workspace: "research", Path: writeFile(t, "a.pdf")}).Run(container))
	require.NoError(t, (&WorkspaceResizeCmd{Name: "research", Width: 1280, Height: 720}).Run(container))
	require.NoError(t, (&WorkspaceListCmd{Format: "table"}).Run(container))
	require.NoError(t, (&WorkspaceShowCmd{Name: "research", Format: "table"}).Run(container))
	require.NoError(t, (&WorkspaceExportCmd{Name: "research", Out: out}).Run(container))
	require.NoError(t, (&WorkspaceDelCmd{Name: "research", Force: true}).Run(container))
	require.NoError(t, (&WorkspaceImportCmd{File: out}).Run(container))
	require.NoError(t, (&WorkspaceRenameCmd{Name: "research", NewName: "archive"}).Run(container))

	ws, err := container.WorkspaceService.GetWorkspace(ctx, "archive")
	require.NoError(t, err)
	assert.Equal(t, 1, ws.DocumentCount())
	assert.Equal(t, 1280.0, ws.WorkspaceSize().Width())

	err = (&WorkspaceCreateCmd{Name: "archive"}).Run(container)
	assert.ErrorIs(t, err, domain.ErrWorkspaceExists)

	_, err = container.WorkspaceService.GetWorkspace(ctx, "research")
	assert.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
}

func TestCLI_KeyBindings(t *testing.T) {
	tests := []struct {
		name     string
		settings *config.Settings
		wantErr  bool
		wantLen  int
	}{
		{"no settings", nil, false, 0},
		{"valid override", &config.Settings{Keys: config.KeyBindingsConfig{"arrange": {"A"}}}, false, 1},
		{"unknown key name", &config.Settings{Keys: config.KeyBindingsConfig{"teleport": {"t"}}}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := &CLI{}
			cli.SetSettings(tt.settings)

			keys, err := cli.keyBindings()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, keys, tt.wantLen)
		})
	}
}

func TestCommands_DocsView(t *testing.T) {
	container := newTestContainer(t)
	path := writeFile(t, "notes.md")
	require.NoError(t, (&DocsOpenCmd{Workspace: "reading", Path: path}).Run(container))

	ws, err := container.WorkspaceService.GetWorkspace(context.Background(), "reading")
	require.NoError(t, err)
	id := ws.Documents()[0].ID()

	viewer := mocks.NewMockDocumentViewer(t)
	viewer.EXPECT().View(path).Return(nil).Once()
	container.Viewer = viewer

	require.NoError(t, (&DocsViewCmd{DocRef: DocRef{Workspace: "reading", ID: id}}).Run(container))

	err = (&DocsViewCmd{DocRef: DocRef{Workspace: "reading", ID: "missing"}}).Run(container)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}
