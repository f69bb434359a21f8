//go:build !linux && !darwin && !windows

package viewer

func findPlatformViewer(path string) (string, []string) {
	return "", nil
}
