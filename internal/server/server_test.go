package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func newPublicKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func writeAuthorizedKeys(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "authorized_keys")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0600))
	return path
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newPublicKey(t)
	other := newPublicKey(t)
	path := writeAuthorizedKeys(t,
		"# team keys",
		"",
		"not a key",
		strings.TrimSpace(string(gossh.MarshalAuthorizedKey(allowed)))+" alice@laptop",
	)

	tests := []struct {
		name string
		key  gossh.PublicKey
		path string
		want bool
	}{
		{"listed key", allowed, path, true},
		{"unknown key", other, path, false},
		{"missing file", allowed, filepath.Join(t.TempDir(), "nope"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isKeyAuthorized(tt.key, tt.path))
		})
	}
}

func TestNewServer_CreatesKeyDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ssh")

	srv, err := NewServer(Config{
		AuthorizedKeysPath: filepath.Join(dir, "authorized_keys"),
		DefaultWorkspace:   "default",
		Host:               "127.0.0.1",
		HostKeyPath:        filepath.Join(dir, "host_ed25519"),
		Port:               23299,
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:23299", srv.Addr())
	assert.DirExists(t, dir)
}
