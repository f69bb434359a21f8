package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/renato0307/docdesk/internal/logging"
	"github.com/renato0307/docdesk/internal/services"
	"github.com/renato0307/docdesk/internal/ui"
)

const shutdownTimeout = 30 * time.Second

// Config holds the SSH server settings
type Config struct {
	AuthorizedKeysPath string
	DefaultWorkspace   string // used when the client does not name one
	Host               string
	HostKeyPath        string
	Model              ui.Options // template for each session's canvas
	Port               int
}

// Server serves the workspace canvas over SSH, one program per session
type Server struct {
	cfg        Config
	wishServer *ssh.Server
	workspaces *services.WorkspaceService
}

// NewServer creates a new SSH server instance
func NewServer(cfg Config, workspaces *services.WorkspaceService) (*Server, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	s := &Server{
		cfg:        cfg,
		workspaces: workspaces,
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithPublicKeyAuth(s.authorize),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Addr returns the address the server listens on
func (s *Server) Addr() string {
	return s.wishServer.Addr
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	logging.Logger.Info("Starting SSH server", "address", s.Addr())
	fmt.Printf("SSH server listening on %s\n", s.Addr())

	errCh := make(chan error, 1)
	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
