package files

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/renato0307/docdesk/internal/domain"
	"github.com/renato0307/docdesk/internal/ports"
)

// Inspector implements ports.FileInspector on the local filesystem
type Inspector struct {
	extensions map[string]bool
}

// Verify interface compliance at compile time
var _ ports.FileInspector = (*Inspector)(nil)

// NewInspector creates an inspector accepting the given extensions
// (e.g. ".pdf"). No extensions means every regular file is accepted.
func NewInspector(extensions []string) *Inspector {
	var allowed map[string]bool
	if len(extensions) > 0 {
		allowed = make(map[string]bool, len(extensions))
		for _, ext := range extensions {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			allowed[ext] = true
		}
	}
	return &Inspector{extensions: allowed}
}

// Inspect resolves path to an absolute file and derives a display title
func (i *Inspector) Inspect(ctx context.Context, path string) (ports.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return ports.FileInfo{}, err
	}
	if strings.TrimSpace(path) == "" {
		return ports.FileInfo{}, fmt.Errorf("%w: empty path", domain.ErrDocumentUnavailable)
	}

	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return ports.FileInfo{}, fmt.Errorf("%w: %v", domain.ErrDocumentUnavailable, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return ports.FileInfo{}, fmt.Errorf("%w: %s: %v", domain.ErrDocumentUnavailable, abs, err)
	}
	if !info.Mode().IsRegular() {
		return ports.FileInfo{}, fmt.Errorf("%w: %s is not a regular file", domain.ErrDocumentUnavailable, abs)
	}
	if i.extensions != nil && !i.extensions[strings.ToLower(filepath.Ext(abs))] {
		return ports.FileInfo{}, fmt.Errorf("%w: %s has an unsupported extension", domain.ErrDocumentUnavailable, abs)
	}

	return ports.FileInfo{
		ModTime: info.ModTime(),
		Path:    abs,
		Size:    info.Size(),
		Title:   TitleFromPath(abs),
	}, nil
}

// TitleFromPath turns "/docs/q3_sales-report.pdf" into "Q3 sales report"
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = strings.Join(strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	}), " ")
	if name == "" {
		return base
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
