package files

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/docdesk/internal/domain"
)

func TestInspector_Inspect(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "q3_sales-report.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.7"), 0644))
	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("hi"), 0644))

	tests := []struct {
		name       string
		extensions []string
		path       string
		wantTitle  string
		wantErr    bool
	}{
		{"accepted file", nil, pdf, "Q3 sales report", false},
		{"extension filter accepts", []string{"PDF"}, pdf, "Q3 sales report", false},
		{"extension filter rejects", []string{".pdf"}, txt, "", true},
		{"missing file", nil, filepath.Join(dir, "gone.pdf"), "", true},
		{"directory", nil, dir, "", true},
		{"empty path", nil, " ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := NewInspector(tt.extensions).Inspect(context.Background(), tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrDocumentUnavailable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, info.Title)
			assert.Equal(t, tt.path, info.Path)
			assert.Equal(t, int64(8), info.Size)
		})
	}
}

func TestInspector_ResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("#"), 0644))
	t.Chdir(dir)

	info, err := NewInspector(nil).Inspect(context.Background(), "a.md")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(info.Path))
	assert.Equal(t, "A", info.Title)
}

func TestInspector_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewInspector(nil).Inspect(ctx, "/etc/hosts")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTitleFromPath(t *testing.T) {
	assert.Equal(t, "Readme", TitleFromPath("/x/readme.md"))
	assert.Equal(t, ".bashrc", TitleFromPath("/home/u/.bashrc"))
	assert.Equal(t, "Annual report 2025", TitleFromPath("annual  report__2025.pdf"))
}
