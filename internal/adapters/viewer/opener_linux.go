//go:build linux

package viewer

import "os/exec"

var defaultViewers = []string{
	"xdg-open",
	"gio",
	"gnome-open",
	"kde-open",
}

func findPlatformViewer(path string) (string, []string) {
	for _, viewer := range defaultViewers {
		if _, err := exec.LookPath(viewer); err != nil {
			continue
		}
		if viewer == "gio" {
			return viewer, []string{"open", path}
		}
		return viewer, []string{path}
	}
	return "", nil
}
