package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyBindingValue_JSON(t *testing.T) {
	var single KeyBindingValue
	require.NoError(t, json.Unmarshal([]byte(`"a"`), &single))
	assert.Equal(t, KeyBindingValue{"a"}, single)

	var many KeyBindingValue
	require.NoError(t, json.Unmarshal([]byte(`["up","k"]`), &many))
	assert.Equal(t, KeyBindingValue{"up", "k"}, many)

	data, err := json.Marshal(single)
	require.NoError(t, err)
	assert.Equal(t, `"a"`, string(data))
}

func TestStringArray_AcceptsCommaSeparated(t *testing.T) {
	var sa StringArray
	require.NoError(t, json.Unmarshal([]byte(`" .pdf, .md ,,"`), &sa))
	assert.Equal(t, StringArray{".pdf", ".md"}, sa)
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"arrange", "help", "quit"}

	tests := []struct {
		name    string
		keys    KeyBindingsConfig
		wantErr string
	}{
		{"nil config", nil, ""},
		{"valid override", KeyBindingsConfig{"arrange": {"A"}}, ""},
		{"unknown name", KeyBindingsConfig{"archive": {"A"}}, "unknown key binding 'archive'"},
		{"empty key", KeyBindingsConfig{"help": {""}}, "contains empty value"},
		{"duplicate key", KeyBindingsConfig{"help": {"q"}, "quit": {"q"}}, "is assigned to both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.keys.Validate(valid)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadSettings(t *testing.T) {
	home := t.TempDir()
	t.Setenv("DOCDESK_HOME", home)

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Nil(t, settings.GridSize, "missing file means defaults")

	grid := 25
	watch := true
	require.NoError(t, SaveSettings(&Settings{
		DefaultLayoutMode: "grid",
		GridSize:          &grid,
		WatchFiles:        &watch,
	}))

	settings, err = LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "grid", settings.DefaultLayoutMode)
	assert.Equal(t, 25, IntOr(settings.GridSize, DefaultGridSize))
	assert.Equal(t, DefaultSSHPort, IntOr(settings.SSHPort, DefaultSSHPort))
	assert.True(t, BoolOr(settings.WatchFiles, false))
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("DOCDESK_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0644))

	_, err := LoadSettings()
	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	data, err := json.Marshal(example)
	require.NoError(t, err)

	var settings Settings
	require.NoError(t, json.Unmarshal(data, &settings))
	assert.Equal(t, DefaultSSHPort, *settings.SSHPort)
	assert.Equal(t, StringArray{".pdf", ".md", ".txt"}, settings.DocumentExtensions)
	assert.Equal(t, "xdg-open", settings.Viewer)
	assert.Len(t, example, 15)
}

func TestPaths(t *testing.T) {
	t.Setenv("DOCDESK_HOME", "/tmp/docdesk-home")

	assert.Equal(t, "/tmp/docdesk-home/state.db", GetDBPath())
	assert.Equal(t, "/tmp/docdesk-home/settings.json", GetSettingsPath())
	assert.Equal(t, "/tmp/docdesk-home/ssh/host_ed25519", GetHostKeyPath())

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "docs"), ExpandPath("~/docs"))
	assert.Equal(t, "/abs", ExpandPath("/abs"))
}
