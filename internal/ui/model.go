package ui

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/docdesk/internal/config"
	"github.com/renato0307/docdesk/internal/domain"
	"github.com/renato0307/docdesk/internal/layout"
	"github.com/renato0307/docdesk/internal/logging"
	"github.com/renato0307/docdesk/internal/ports"
	"github.com/renato0307/docdesk/internal/services"
	"github.com/renato0307/docdesk/internal/theme"
)

const (
	animationFrame   = 16 * time.Millisecond
	chromeLines      = 3 // header, status and help
	defaultMoveStep  = 20
	defaultResizeStp = 40
)

type uiState int

const (
	stateCanvas uiState = iota
	stateConfirmingCloseAll
	stateHelp
	stateOpeningDocument
)

// Options configures a Model
type Options struct {
	DevMode            bool
	DocumentExtensions []string
	ErrorClearDelay    time.Duration
	Keys               config.KeyBindingsConfig
	MoveStep           float64 // workspace pixels per key press
	ResizeStep         float64
	Viewer             ports.DocumentViewer   // nil disables the view key
	WatchService       *services.WatchService // nil disables file watching
	WorkspaceName      string
	Workspaces         *services.WorkspaceService
}

// Model is the interactive workspace canvas
type Model struct {
	animStart     time.Time
	animation     []layout.AnimatedLayoutResult
	confirmDialog *Dialog // close all confirmation
	ctx           context.Context
	devMode       bool
	errorManager  *ErrorManager
	extensions    []string
	height        int
	help          help.Model
	helpScreen    *Dialog
	keys          KeyMap
	moveStep      float64
	notice        string
	openDialog    *Dialog
	report        services.LayoutReport
	resizeStep    float64
	state         uiState
	viewer        ports.DocumentViewer
	watchCancel   context.CancelFunc
	watchService  *services.WatchService
	width         int
	workspaceName string
	workspaces    *services.WorkspaceService
}

// NewModel creates the canvas model for one workspace
func NewModel(ctx context.Context, opts Options) *Model {
	moveStep := opts.MoveStep
	if moveStep <= 0 {
		moveStep = defaultMoveStep
	}
	resizeStep := opts.ResizeStep
	if resizeStep <= 0 {
		resizeStep = defaultResizeStp
	}

	return &Model{
		ctx:           ctx,
		devMode:       opts.DevMode,
		errorManager:  NewErrorManager(opts.ErrorClearDelay),
		extensions:    opts.DocumentExtensions,
		help:          help.New(),
		keys:          NewKeyMap(opts.Keys),
		moveStep:      moveStep,
		resizeStep:    resizeStep,
		state:         stateCanvas,
		viewer:        opts.Viewer,
		watchService:  opts.WatchService,
		workspaceName: opts.WorkspaceName,
		workspaces:    opts.Workspaces,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.loadCmd(false, "")
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.updateBackground(msg); handled {
		return m, cmd
	}

	switch m.state {
	case stateCanvas:
		return m.updateCanvas(msg)
	case stateConfirmingCloseAll:
		return m.updateConfirmingCloseAll(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateOpeningDocument:
		return m.updateOpeningDocument(msg)
	}
	return m, nil
}

// updateBackground handles command results, which arrive in any state
func (m *Model) updateBackground(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.state == stateHelp && m.helpScreen != nil {
			updated, cmd := m.helpScreen.Update(msg)
			m.helpScreen = updated.(*Dialog)
			return cmd, true
		}
		return nil, true

	case layoutLoadedMsg:
		// The first load also starts watching
		rewatch := msg.rewatch || m.report.Workspace == nil
		m.report = msg.report
		if msg.notice != "" {
			m.notice = msg.notice
		}
		var cmds []tea.Cmd
		if rewatch {
			cmds = append(cmds, m.startWatchCmd())
		}
		if len(msg.animated) > 0 {
			m.animation = msg.animated
			m.animStart = time.Now()
			cmds = append(cmds, animationTick())
		}
		return tea.Batch(cmds...), true

	case errMsg:
		logging.Logger.Warn("Canvas operation failed", "workspace", m.workspaceName, "error", msg.err)
		m.notice = ""
		return m.errorManager.SetError(msg.err), true

	case clearErrorMsg:
		m.errorManager.Clear(msg.id)
		return nil, true

	case watchStartedMsg:
		return waitForWatch(msg.updates), true

	case watchUpdateMsg:
		cmds := []tea.Cmd{waitForWatch(msg.updates), m.loadCmd(false, "")}
		if msg.update.Err != nil {
			cmds = append(cmds, m.errorManager.SetError(msg.update.Err))
		}
		return tea.Batch(cmds...), true

	case animationTickMsg:
		if m.animation == nil {
			return nil, true
		}
		if animationDone(m.animation, msg.at.Sub(m.animStart)) {
			m.animation = nil
			return nil, true
		}
		return animationTick(), true
	}
	return nil, false
}

func (m *Model) updateCanvas(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	action, ok := m.keys.Dispatch(keyMsg)
	if !ok {
		return m, nil
	}
	return m.handleAction(action)
}

func (m *Model) handleAction(action tea.Msg) (tea.Model, tea.Cmd) {
	switch action := action.(type) {
	case QuitMsg:
		m.stopWatch()
		return m, tea.Quit

	case ShowHelpMsg:
		m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys), m.devMode)
		m.state = stateHelp
		initCmd := m.helpScreen.Init()
		updated, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.helpScreen = updated.(*Dialog)
		return m, tea.Batch(initCmd, sizeCmd)

	case RefreshMsg:
		m.notice = ""
		return m, m.loadCmd(false, "")

	case OpenDocumentMsg:
		m.openDialog = NewDialog("Open Document", NewOpenDocumentForm(m.extensions), m.devMode)
		m.state = stateOpeningDocument
		return m, m.openDialog.Init()

	case CloseDocumentMsg:
		active, ok := m.activeDocument()
		if !ok {
			return m, nil
		}
		id := active.ID()
		return m, m.mutate(true, func(ctx context.Context, name string) (string, error) {
			_, err := m.workspaces.CloseDocument(ctx, name, id)
			return "Closed " + active.Title(), err
		})

	case CloseAllDocumentsMsg:
		if m.report.Workspace == nil || m.report.Workspace.DocumentCount() == 0 {
			return m, nil
		}
		form := NewConfirmForm("Close all documents?",
			fmt.Sprintf("%d documents will be closed", m.report.Workspace.DocumentCount()))
		m.confirmDialog = NewDialog("Close All", form, m.devMode)
		m.state = stateConfirmingCloseAll
		return m, m.confirmDialog.Init()

	case CycleDocumentMsg:
		id, ok := m.cycleTarget(action.Delta)
		if !ok {
			return m, nil
		}
		return m, m.mutate(false, func(ctx context.Context, name string) (string, error) {
			_, err := m.workspaces.ActivateDocument(ctx, name, id)
			return "", err
		})

	case ReloadDocumentMsg:
		active, ok := m.activeDocument()
		if !ok {
			return m, nil
		}
		id := active.ID()
		return m, m.mutate(false, func(ctx context.Context, name string) (string, error) {
			doc, err := m.workspaces.ReloadDocument(ctx, name, id)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Reloaded %s (%s)", doc.Title(), doc.State()), nil
		})

	case ViewDocumentMsg:
		active, ok := m.activeDocument()
		if !ok {
			return m, nil
		}
		if m.viewer == nil {
			return m, m.errorManager.SetError(errors.New("no document viewer configured"))
		}
		viewer, path, title := m.viewer, active.FilePath(), active.Title()
		return m, m.mutate(false, func(ctx context.Context, name string) (string, error) {
			if err := viewer.View(path); err != nil {
				return "", err
			}
			return "Opened " + title + " in viewer", nil
		})

	case MoveDocumentMsg:
		active, ok := m.activeDocument()
		if !ok {
			return m, nil
		}
		id := active.ID()
		x := math.Max(0, active.Position().X()+float64(action.DX)*m.moveStep)
		y := math.Max(0, active.Position().Y()+float64(action.DY)*m.moveStep)
		return m, m.mutate(false, func(ctx context.Context, name string) (string, error) {
			_, err := m.workspaces.MoveDocument(ctx, name, id, x, y)
			return "", err
		})

	case ResizeDocumentMsg:
		active, ok := m.activeDocument()
		if !ok {
			return m, nil
		}
		id := active.ID()
		w, h := resizedDimensions(active.Dimensions(), float64(action.DW)*m.resizeStep, float64(action.DH)*m.resizeStep)
		return m, m.mutate(false, func(ctx context.Context, name string) (string, error) {
			_, err := m.workspaces.ResizeDocument(ctx, name, id, w, h)
			return "", err
		})

	case SwitchLayoutMsg:
		return m, m.animateCmd(action.Mode)

	case ApplySuggestionMsg:
		if m.report.Suggestion == "" {
			return m, nil
		}
		return m, m.animateCmd(m.report.Suggestion)

	case ArrangeMsg:
		return m, m.mutate(false, func(ctx context.Context, name string) (string, error) {
			result, err := m.workspaces.ArrangeWithoutOverlap(ctx, name, -1)
			if err != nil {
				return "", err
			}
			if len(result.Fallback) > 0 {
				return fmt.Sprintf("%d documents could not be placed without overlap", len(result.Fallback)), nil
			}
			return "Arranged without overlap", nil
		})

	case SnapMsg:
		return m, m.mutate(false, func(ctx context.Context, name string) (string, error) {
			_, err := m.workspaces.SnapToGrid(ctx, name, 0)
			return "Snapped to grid", err
		})
	}
	return m, nil
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if hs, ok := m.helpScreen.Content().(*HelpScreen); ok && hs.Completed {
		m.state = stateCanvas
		m.helpScreen = nil
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateOpeningDocument(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.openDialog.Update(msg)
	m.openDialog = updated.(*Dialog)

	form, ok := m.openDialog.Content().(*OpenDocumentForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	m.state = stateCanvas
	m.openDialog = nil
	result := form.Result()
	if result.Cancelled {
		return m, nil
	}

	params := services.OpenDocumentParams{Path: result.Path, Title: result.Title}
	return m, m.mutate(true, func(ctx context.Context, name string) (string, error) {
		doc, err := m.workspaces.OpenDocument(ctx, name, params)
		if err != nil {
			return "", err
		}
		return "Opened " + doc.Title(), nil
	})
}

func (m *Model) updateConfirmingCloseAll(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.confirmDialog.Update(msg)
	m.confirmDialog = updated.(*Dialog)

	form, ok := m.confirmDialog.Content().(*ConfirmForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	m.state = stateCanvas
	m.confirmDialog = nil
	if !form.Confirmed() {
		return m, nil
	}
	return m, m.mutate(true, func(ctx context.Context, name string) (string, error) {
		_, err := m.workspaces.CloseAllDocuments(ctx, name)
		return "Closed all documents", err
	})
}

func (m *Model) View() string {
	switch m.state {
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	case stateOpeningDocument, stateConfirmingCloseAll:
		dialog := m.openDialog
		if m.state == stateConfirmingCloseAll {
			dialog = m.confirmDialog
		}
		if dialog != nil && m.width > 0 && m.height > 0 {
			box := theme.DialogStyle.Render(dialog.View())
			return compositeOverlay(m.canvasView(), box, m.width, m.height)
		}
		if dialog != nil {
			return dialog.View()
		}
	}
	return m.canvasView()
}

func (m *Model) canvasView() string {
	if m.report.Workspace == nil {
		if err := m.errorManager.Err(); err != nil {
			return m.errorManager.View(m.width)
		}
		return "Loading workspace..."
	}

	rows := max(m.height-chromeLines, 0)
	canvas := renderCanvas(m.canvasItems(), m.report.Workspace.WorkspaceSize(), m.width, rows)

	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), canvas, m.footerView())
}

func (m *Model) canvasItems() []canvasItem {
	var elapsed time.Duration
	if m.animation != nil {
		elapsed = time.Since(m.animStart)
	}
	return canvasItems(m.report, m.animation, elapsed)
}

func (m *Model) headerView() string {
	ws := m.report.Workspace
	mode := ws.LayoutMode()

	parts := []string{
		theme.AppNameStyle.Render("docdesk"),
		theme.TitleStyle.Render(ws.Name()),
		theme.ModeStyle(mode).Render(strings.ToUpper(string(mode))),
		theme.MutedStyle.Render(fmt.Sprintf("%d documents", ws.DocumentCount())),
	}
	if m.report.Suggestion != "" && m.report.Suggestion != mode {
		parts = append(parts, theme.MutedStyle.Render("suggested: "+string(m.report.Suggestion)))
	}
	if n := len(m.report.Report.Issues); n > 0 {
		parts = append(parts, theme.WarningStyle.Render(fmt.Sprintf("%d layout issues", n)))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) footerView() string {
	if m.errorManager.Err() != nil {
		view := m.errorManager.View(m.width)
		if strings.Count(view, "\n") == 0 {
			view += "\n"
		}
		return view
	}

	status := m.notice
	if status == "" {
		status = m.activeStatus()
	}
	return theme.NormalStyle.Render(status) + "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
}

func (m *Model) activeStatus() string {
	active, ok := m.activeDocument()
	if !ok {
		return theme.MutedStyle.Render("No documents open")
	}
	status := fmt.Sprintf("%s %s  %s", active.State().Symbol(), active.Title(), active.FilePath())
	if msg := active.ErrorMessage(); msg != "" {
		status += "  " + theme.ErrorStyle.Render(msg)
	}
	return status
}

func (m *Model) activeDocument() (domain.DocumentCaddy, bool) {
	if m.report.Workspace == nil {
		return domain.DocumentCaddy{}, false
	}
	return m.report.Workspace.ActiveDocument()
}

// cycleTarget returns the document delta positions away from the active one,
// in insertion order
func (m *Model) cycleTarget(delta int) (string, bool) {
	if m.report.Workspace == nil {
		return "", false
	}
	docs := m.report.Workspace.Documents()
	n := len(docs)
	if n == 0 {
		return "", false
	}

	current := -1
	for i, d := range docs {
		if d.IsActive() {
			current = i
			break
		}
	}
	if current < 0 {
		return docs[0].ID(), true
	}
	next := ((current+delta)%n + n) % n
	if next == current {
		return "", false
	}
	return docs[next].ID(), true
}

func resizedDimensions(d domain.Dimensions, dw, dh float64) (float64, float64) {
	lo, hi := domain.MinimumDimensions(), domain.MaximumDimensions()
	w := math.Min(hi.Width(), math.Max(lo.Width(), d.Width()+dw))
	h := math.Min(hi.Height(), math.Max(lo.Height(), d.Height()+dh))
	return w, h
}

// Commands

// mutate runs op against the workspace and reloads the layout when it
// succeeds. rewatch restarts file watching for operations that change the
// set of open files.
func (m *Model) mutate(rewatch bool, op func(ctx context.Context, name string) (string, error)) tea.Cmd {
	ctx, name := m.ctx, m.workspaceName
	return func() tea.Msg {
		notice, err := op(ctx, name)
		if err != nil {
			return errMsg{err: err}
		}
		return m.load(ctx, rewatch, notice)
	}
}

func (m *Model) loadCmd(rewatch bool, notice string) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return m.load(ctx, rewatch, notice)
	}
}

func (m *Model) load(ctx context.Context, rewatch bool, notice string) tea.Msg {
	report, err := m.workspaces.Layout(ctx, m.workspaceName)
	if err != nil {
		return errMsg{err: err}
	}
	return layoutLoadedMsg{notice: notice, report: report, rewatch: rewatch}
}

func (m *Model) animateCmd(mode domain.LayoutMode) tea.Cmd {
	ctx, name := m.ctx, m.workspaceName
	return func() tea.Msg {
		animated, err := m.workspaces.AnimateLayoutMode(ctx, name, mode)
		if err != nil {
			return errMsg{err: err}
		}
		report, err := m.workspaces.Layout(ctx, name)
		if err != nil {
			return errMsg{err: err}
		}
		return layoutLoadedMsg{animated: animated, notice: "Layout: " + string(mode), report: report}
	}
}

// startWatchCmd replaces the running watch with one over the documents open now
func (m *Model) startWatchCmd() tea.Cmd {
	if m.watchService == nil {
		return nil
	}
	m.stopWatch()

	ctx, cancel := context.WithCancel(m.ctx)
	m.watchCancel = cancel
	service, name := m.watchService, m.workspaceName
	return func() tea.Msg {
		updates, err := service.Watch(ctx, name)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return errMsg{err: fmt.Errorf("failed to watch documents: %w", err)}
		}
		return watchStartedMsg{updates: updates}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
}

func waitForWatch(updates <-chan services.WatchUpdate) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return nil
		}
		return watchUpdateMsg{update: update, updates: updates}
	}
}

func animationTick() tea.Cmd {
	return tea.Tick(animationFrame, func(t time.Time) tea.Msg {
		return animationTickMsg{at: t}
	})
}
