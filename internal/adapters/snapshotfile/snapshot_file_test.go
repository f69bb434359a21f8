package snapshotfile

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/docdesk/internal/domain"
)

func sampleSnapshot(t *testing.T, name string) domain.WorkspaceSnapshot {
	t.Helper()
	size, err := domain.NewDimensions(1280, 800)
	require.NoError(t, err)
	ws, err := domain.NewWorkspace(name, size, domain.WithLayoutMode(domain.LayoutGrid))
	require.NoError(t, err)
	_, err = ws.AddDocument("/docs/a.pdf", "a")
	require.NoError(t, err)
	_, err = ws.AddDocument("/docs/b.md", "b")
	require.NoError(t, err)
	return ws.Snapshot()
}

func TestJSONFile_WriteRead(t *testing.T) {
	f := NewJSONFile()
	path := filepath.Join(t.TempDir(), "exports", "research.json")
	snap := sampleSnapshot(t, "research")

	require.NoError(t, f.Write(path, snap))
	got, err := f.Read(path)
	require.NoError(t, err)

	restored, err := domain.RestoreWorkspace(got)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, restored.ID())
	assert.Equal(t, domain.LayoutGrid, restored.LayoutMode())
	assert.Equal(t, 2, restored.DocumentCount())
}

func TestJSONFile_OverwriteTruncates(t *testing.T) {
	f := NewJSONFile()
	path := filepath.Join(t.TempDir(), "ws.json")

	require.NoError(t, f.Write(path, sampleSnapshot(t, "a-much-longer-workspace-name")))
	require.NoError(t, f.Write(path, sampleSnapshot(t, "short")))

	got, err := f.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "short", got.Name)
}

func TestJSONFile_ReadErrors(t *testing.T) {
	f := NewJSONFile()
	dir := t.TempDir()

	_, err := f.Read(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	garbage := filepath.Join(dir, "garbage.json")
	require.NoError(t, os.WriteFile(garbage, []byte("not json"), 0644))
	_, err = f.Read(garbage)
	assert.ErrorIs(t, err, domain.ErrInvalidSnapshot)
}

func TestJSONFile_ConcurrentWriters(t *testing.T) {
	f := NewJSONFile()
	path := filepath.Join(t.TempDir(), "ws.json")
	snap := sampleSnapshot(t, "concurrent")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.Write(path, snap))
		}()
	}
	wg.Wait()

	got, err := f.Read(path)
	require.NoError(t, err)
	_, err = domain.RestoreWorkspace(got)
	assert.NoError(t, err)
}
