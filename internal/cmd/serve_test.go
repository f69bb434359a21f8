package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/docdesk/internal/config"
)

func TestServeCmd_Address(t *testing.T) {
	tests := []struct {
		name     string
		cmd      ServeCmd
		env      map[string]string
		settings *config.Settings
		wantHost string
		wantPort int
	}{
		{
			name:     "defaults",
			wantHost: "localhost",
			wantPort: 23234,
		},
		{
			name:     "settings",
			settings: &config.Settings{SSHHost: "0.0.0.0", SSHPort: intPtr(2222)},
			wantHost: "0.0.0.0",
			wantPort: 2222,
		},
		{
			name:     "env beats settings",
			env:      map[string]string{"DOCDESK_SSH_HOST": "10.0.0.1", "DOCDESK_SSH_PORT": "2200"},
			settings: &config.Settings{SSHHost: "0.0.0.0", SSHPort: intPtr(2222)},
			wantHost: "10.0.0.1",
			wantPort: 2200,
		},
		{
			name:     "flags beat everything",
			cmd:      ServeCmd{Host: "127.0.0.1", Port: 2000},
			env:      map[string]string{"DOCDESK_SSH_HOST": "10.0.0.1", "DOCDESK_SSH_PORT": "2200"},
			settings: &config.Settings{SSHHost: "0.0.0.0", SSHPort: intPtr(2222)},
			wantHost: "127.0.0.1",
			wantPort: 2000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DOCDESK_SSH_HOST", "")
			t.Setenv("DOCDESK_SSH_PORT", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			host, port, err := tt.cmd.address(tt.settings)

			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantPort, port)
		})
	}
}

func TestServeCmd_AddressRejectsBadPort(t *testing.T) {
	t.Setenv("DOCDESK_SSH_PORT", "ssh")
	_, _, err := (&ServeCmd{}).address(nil)
	assert.Error(t, err)

	t.Setenv("DOCDESK_SSH_PORT", "")
	_, _, err = (&ServeCmd{}).address(&config.Settings{SSHPort: intPtr(70000)})
	assert.Error(t, err)
}
