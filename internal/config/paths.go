package config

import (
	"os"
	"path/filepath"
)

// GetDocdeskHome returns DOCDESK_HOME or ~/.docdesk default
func GetDocdeskHome() string {
	home := os.Getenv("DOCDESK_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".docdesk"
		}
		return filepath.Join(homeDir, ".docdesk")
	}
	return ExpandPath(home)
}

// GetDBPath returns $DOCDESK_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetDocdeskHome(), "state.db")
}

// GetSettingsPath returns $DOCDESK_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetDocdeskHome(), "settings.json")
}

// GetHostKeyPath returns $DOCDESK_HOME/ssh/host_ed25519
func GetHostKeyPath() string {
	return filepath.Join(GetDocdeskHome(), "ssh", "host_ed25519")
}

// GetAuthorizedKeysPath returns $DOCDESK_HOME/ssh/authorized_keys
func GetAuthorizedKeysPath() string {
	return filepath.Join(GetDocdeskHome(), "ssh", "authorized_keys")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
