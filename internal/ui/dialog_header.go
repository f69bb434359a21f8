package ui

import (
	"fmt"

	"github.com/renato0307/docdesk/internal/theme"
)

// VersionInfo holds version information for display in UI headers
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Version   string
}

var versionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Version:   "dev",
}

// SetVersionInfo sets the version shown in dev mode headers
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderHeader renders the app name, the version in dev mode, and an optional subtitle
func renderHeader(devMode bool, subtitle string) string {
	header := theme.AppNameStyle.Render("docdesk")
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		header += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version, commit, versionInfo.Date, versionInfo.GoVersion))
	}
	if subtitle != "" {
		header += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}
	return header + "\n"
}

// renderDialogHeader is used by Dialog only
func renderDialogHeader(devMode bool, title string) string {
	return renderHeader(devMode, title) + "\n"
}
