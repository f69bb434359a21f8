package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/docdesk/internal/logging"
	"github.com/renato0307/docdesk/internal/ui"
)

// sessionModel wraps ui.Model to log the end of the SSH session
type sessionModel struct {
	*ui.Model
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	}

	updated, cmd := s.Model.Update(msg)
	if m, ok := updated.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

// workspaceFor returns the workspace named by the SSH command, e.g.
// `ssh -t host research`, falling back to the configured default
func (s *Server) workspaceFor(sess ssh.Session) string {
	if args := sess.Command(); len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return s.cfg.DefaultWorkspace
}

// teaHandler creates a canvas model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())
	name := s.workspaceFor(sess)

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"workspace", name,
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	if _, err := s.workspaces.GetOrCreateWorkspace(sess.Context(), name); err != nil {
		logging.Logger.Error("Failed to open workspace for SSH session",
			"error", err,
			"session_id", sessionID,
			"workspace", name)
		return errorModel{err}, nil
	}

	opts := s.cfg.Model
	opts.DevMode = false
	opts.WorkspaceName = name
	opts.Workspaces = s.workspaces

	model := &sessionModel{
		Model:     ui.NewModel(sess.Context(), opts),
		sessionID: sessionID,
		startTime: time.Now(),
	}
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// errorModel displays an error and quits
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
