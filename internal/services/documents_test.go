package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/docdesk/internal/domain"
	"github.com/renato0307/docdesk/internal/ports"
)

func TestOpenDocument_InspectsAndMarksReady(t *testing.T) {
	svc, m := newTestService(t)
	ws := newTestWorkspace(t, "research")

	m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)
	m.inspector.EXPECT().Inspect(mock.Anything, "~/docs/q3.pdf").
		Return(ports.FileInfo{Path: "/home/ana/docs/q3.pdf", Title: "Q3"}, nil)
	m.repo.EXPECT().Save(mock.Anything, ws).Return(nil)

	caddy, err := svc.OpenDocument(context.Background(), "research", OpenDocumentParams{Path: "~/docs/q3.pdf"})

	require.NoError(t, err)
	assert.Equal(t, "/home/ana/docs/q3.pdf", caddy.FilePath())
	assert.Equal(t, "Q3", caddy.Title())
	assert.Equal(t, domain.CaddyReady, caddy.State())
	assert.True(t, caddy.IsActive())
	assert.Equal(t, 1, ws.DocumentCount())
}

func TestOpenDocument_ExplicitTitle(t *testing.T) {
	svc, m := newTestService(t)
	ws := newTestWorkspace(t, "research")

	m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)
	m.inspector.EXPECT().Inspect(mock.Anything, "/docs/q3.pdf").
		Return(ports.FileInfo{Path: "/docs/q3.pdf", Title: "Q3"}, nil)
	m.repo.EXPECT().Save(mock.Anything, ws).Return(nil)

	caddy, err := svc.OpenDocument(context.Background(), "research", OpenDocumentParams{Path: "/docs/q3.pdf", Title: "Quarterly"})

	require.NoError(t, err)
	assert.Equal(t, "Quarterly", caddy.Title())
}

func TestOpenDocument_SameFileActivatesExisting(t *testing.T) {
	svc, m := newTestService(t)
	ws := newTestWorkspace(t, "research", "/docs/a.pdf", "/docs/b.pdf")
	first := ws.Documents()[0]

	m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)
	m.inspector.EXPECT().Inspect(mock.Anything, "/docs/a.pdf").
		Return(ports.FileInfo{Path: "/docs/a.pdf", Title: "a"}, nil)
	m.repo.EXPECT().Save(mock.Anything, ws).Return(nil)

	require.NoError(t, ws.ActivateDocument(ws.Documents()[1].ID()))

	caddy, err := svc.OpenDocument(context.Background(), "research", OpenDocumentParams{Path: "/docs/a.pdf"})

	require.NoError(t, err)
	assert.Equal(t, first.ID(), caddy.ID())
	assert.Equal(t, first.ID(), ws.ActiveDocumentID())
	assert.Equal(t, 2, ws.DocumentCount())
}

func TestOpenDocument_Unavailable(t *testing.T) {
	svc, m := newTestService(t)
	ws := newTestWorkspace(t, "research")

	m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)
	m.inspector.EXPECT().Inspect(mock.Anything, "/docs/gone.pdf").
		Return(ports.FileInfo{}, unavailable("/docs/gone.pdf"))

	_, err := svc.OpenDocument(context.Background(), "research", OpenDocumentParams{Path: "/docs/gone.pdf"})

	assert.ErrorIs(t, err, domain.ErrDocumentUnavailable)
	assert.Zero(t, ws.DocumentCount())
}

func TestOpenDocument_WorkspaceNotFound(t *testing.T) {
	svc, m := newTestService(t)
	m.repo.EXPECT().GetByName(mock.Anything, "missing").Return(nil, notFound("missing"))

	_, err := svc.OpenDocument(context.Background(), "missing", OpenDocumentParams{Path: "/docs/a.pdf"})
	assert.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
}

func TestCloseDocument(t *testing.T) {
	t.Run("active hands over", func(t *testing.T) {
		svc, m := newTestService(t)
		ws := newTestWorkspace(t, "research", "/docs/a.pdf", "/docs/b.pdf")
		active := ws.ActiveDocumentID()

		m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)
		m.repo.EXPECT().Save(mock.Anything, ws).Return(nil)

		got, err := svc.CloseDocument(context.Background(), "research", active)

		require.NoError(t, err)
		assert.Equal(t, 1, got.DocumentCount())
		assert.NotEmpty(t, got.ActiveDocumentID())
		assert.NotEqual(t, active, got.ActiveDocumentID())
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, m := newTestService(t)
		ws := newTestWorkspace(t, "research", "/docs/a.pdf")
		m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)

		_, err := svc.CloseDocument(context.Background(), "research", "doc_missing")

		var nf *domain.DocumentNotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "doc_missing", nf.DocumentID)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})
}

func TestCloseAllDocuments(t *testing.T) {
	svc, m := newTestService(t)
	ws := newTestWorkspace(t, "research", "/docs/a.pdf", "/docs/b.pdf", "/docs/c.pdf")

	m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)
	m.repo.EXPECT().Save(mock.Anything, ws).Return(nil)

	got, err := svc.CloseAllDocuments(context.Background(), "research")

	require.NoError(t, err)
	assert.Zero(t, got.DocumentCount())
	assert.Empty(t, got.ActiveDocumentID())
}

func TestActivateDocument_LiftsInStack(t *testing.T) {
	svc, m := newTestService(t)
	ws := newTestWorkspace(t, "research", "/docs/a.pdf", "/docs/b.pdf", "/docs/c.pdf")
	target := ws.Documents()[1].ID()

	m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)
	m.repo.EXPECT().Save(mock.Anything, ws).Return(nil)

	got, err := svc.ActivateDocument(context.Background(), "research", target)

	require.NoError(t, err)
	active, ok := got.ActiveDocument()
	require.True(t, ok)
	assert.Equal(t, target, active.ID())
	assert.Equal(t, got.MaxZIndex(), active.ZIndex())
}

func TestMoveDocument_SwitchesToFreeform(t *testing.T) {
	svc, m := newTestService(t)
	ws := newTestWorkspace(t, "research", "/docs/a.pdf", "/docs/b.pdf")
	id := ws.Documents()[1].ID()

	m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)
	m.repo.EXPECT().Save(mock.Anything, ws).Return(nil)

	results, err := svc.MoveDocument(context.Background(), "research", id, 300, 250)

	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, domain.LayoutFreeform, ws.LayoutMode())
	moved, _ := ws.Document(id)
	assert.Equal(t, 300.0, moved.Position().X())
	assert.Equal(t, 250.0, moved.Position().Y())
}

func TestMoveDocument_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, ws *domain.Workspace) string
		wantErr error
	}{
		{
			name: "loading caddy",
			prepare: func(t *testing.T, ws *domain.Workspace) string {
				id := ws.Documents()[0].ID()
				require.NoError(t, ws.ReloadDocument(id))
				return id
			},
			wantErr: domain.ErrInvalidState,
		},
		{
			name: "unknown caddy",
			prepare: func(t *testing.T, ws *domain.Workspace) string {
				return "doc_missing"
			},
			wantErr: domain.ErrDocumentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)
			ws := newTestWorkspace(t, "research", "/docs/a.pdf")
			id := tt.prepare(t, ws)
			m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)

			_, err := svc.MoveDocument(context.Background(), "research", id, 10, 10)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, domain.LayoutStacked, ws.LayoutMode())
		})
	}
}

func TestMoveDocument_NegativeCoordinate(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.MoveDocument(context.Background(), "research", "doc_1", -1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidGeometry)
}

func TestResizeDocument(t *testing.T) {
	svc, m := newTestService(t)
	ws := newTestWorkspace(t, "research", "/docs/a.pdf")
	_, err := ws.SwitchLayoutMode(domain.LayoutGrid)
	require.NoError(t, err)
	id := ws.Documents()[0].ID()

	m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)
	m.repo.EXPECT().Save(mock.Anything, ws).Return(nil)

	_, err = svc.ResizeDocument(context.Background(), "research", id, 800, 500)

	require.NoError(t, err)
	assert.Equal(t, domain.LayoutFreeform, ws.LayoutMode())
	resized, _ := ws.Document(id)
	assert.Equal(t, 800.0, resized.Dimensions().Width())
	assert.Equal(t, 500.0, resized.Dimensions().Height())
}

func TestMarkDocumentStates(t *testing.T) {
	svc, m := newTestService(t)
	ws := newTestWorkspace(t, "research", "/docs/a.pdf")
	id := ws.Documents()[0].ID()

	m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)
	m.repo.EXPECT().Save(mock.Anything, ws).Return(nil)

	_, err := svc.MarkDocumentReady(context.Background(), "research", id)
	assert.ErrorIs(t, err, domain.ErrInvalidState, "ready caddies cannot be marked ready again")

	_, err = svc.MarkDocumentError(context.Background(), "research", id, "corrupt")
	require.NoError(t, err)
	doc, _ := ws.Document(id)
	assert.Equal(t, domain.CaddyError, doc.State())
	assert.Equal(t, "corrupt", doc.ErrorMessage())
}

func TestReloadDocument(t *testing.T) {
	tests := []struct {
		name        string
		inspectErr  error
		wantState   domain.CaddyState
		wantMessage bool
	}{
		{name: "file still there", wantState: domain.CaddyReady},
		{name: "file gone", inspectErr: unavailable("/docs/a.pdf"), wantState: domain.CaddyError, wantMessage: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)
			ws := newTestWorkspace(t, "research", "/docs/a.pdf")
			id := ws.Documents()[0].ID()
			require.NoError(t, ws.MarkDocumentError(id, "stale"))

			m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)
			m.inspector.EXPECT().Inspect(mock.Anything, "/docs/a.pdf").Return(ports.FileInfo{Path: "/docs/a.pdf"}, tt.inspectErr)
			m.repo.EXPECT().Save(mock.Anything, ws).Return(nil)

			caddy, err := svc.ReloadDocument(context.Background(), "research", id)

			require.NoError(t, err)
			assert.Equal(t, tt.wantState, caddy.State())
			if tt.wantMessage {
				assert.Contains(t, caddy.ErrorMessage(), "unavailable")
			} else {
				assert.Empty(t, caddy.ErrorMessage())
			}
		})
	}
}
