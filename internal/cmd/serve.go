package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/renato0307/docdesk/internal/config"
	"github.com/renato0307/docdesk/internal/logging"
	"github.com/renato0307/docdesk/internal/server"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	CanvasFlags `embed:""`
	Host        string `help:"Host to bind to (default: settings ssh_host or localhost)"`
	Port        int    `help:"Port to listen on (default: settings ssh_port or 23234)"`
	Workspace   string `help:"Workspace for clients that do not name one" short:"w" default:"default"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI, container *Container) error {
	host, port, err := s.address(cli.settings)
	if err != nil {
		return err
	}

	opts, err := cli.modelOptions(container, s.CanvasFlags)
	if err != nil {
		return err
	}
	// A viewer would start on the server host, not in front of the client
	opts.Viewer = nil

	logging.Logger.Info("Starting docdesk SSH server",
		"host", host,
		"port", port,
		"workspace", s.Workspace)

	srv, err := server.NewServer(server.Config{
		AuthorizedKeysPath: config.GetAuthorizedKeysPath(),
		DefaultWorkspace:   s.Workspace,
		Host:               host,
		HostKeyPath:        config.GetHostKeyPath(),
		Model:              opts,
		Port:               port,
	}, container.WorkspaceService)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Blocks until shutdown
	return srv.Start(ctx)
}

// address resolves host and port: flag > env var > settings.json > default
func (s *ServeCmd) address(settings *config.Settings) (string, int, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	host := s.Host
	if host == "" {
		host = os.Getenv("DOCDESK_SSH_HOST")
	}
	if host == "" {
		host = settings.SSHHost
	}
	if host == "" {
		host = config.DefaultSSHHost
	}

	port := s.Port
	if port == 0 {
		if env := os.Getenv("DOCDESK_SSH_PORT"); env != "" {
			parsed, err := strconv.Atoi(env)
			if err != nil {
				return "", 0, fmt.Errorf("invalid DOCDESK_SSH_PORT %q: %w", env, err)
			}
			port = parsed
		}
	}
	if port == 0 {
		port = config.IntOr(settings.SSHPort, config.DefaultSSHPort)
	}
	if port <= 0 || port > 65535 {
		return "", 0, fmt.Errorf("invalid SSH port %d", port)
	}

	return host, port, nil
}
