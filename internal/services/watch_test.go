package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/docdesk/internal/domain"
	"github.com/renato0307/docdesk/internal/ports"
	portsmocks "github.com/renato0307/docdesk/internal/ports/mocks"
)

func TestWatchService_HandleEvent(t *testing.T) {
	tests := []struct {
		name        string
		event       ports.FileEvent
		setup       func(m testMocks)
		wantHandled bool
		wantState   domain.CaddyState
		wantMessage string
	}{
		{
			name:        "removed file fails the caddy",
			event:       ports.FileEvent{Operation: ports.FileRemoved, Path: "/docs/a.pdf"},
			setup:       func(m testMocks) { m.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil) },
			wantHandled: true,
			wantState:   domain.CaddyError,
			wantMessage: "file removed",
		},
		{
			name:        "renamed file fails the caddy",
			event:       ports.FileEvent{Operation: ports.FileRenamed, Path: "/docs/a.pdf"},
			setup:       func(m testMocks) { m.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil) },
			wantHandled: true,
			wantState:   domain.CaddyError,
			wantMessage: "file renamed",
		},
		{
			name:  "modified file reloads the caddy",
			event: ports.FileEvent{Operation: ports.FileModified, Path: "/docs/a.pdf"},
			setup: func(m testMocks) {
				m.inspector.EXPECT().Inspect(mock.Anything, "/docs/a.pdf").Return(ports.FileInfo{Path: "/docs/a.pdf"}, nil)
				m.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
			},
			wantHandled: true,
			wantState:   domain.CaddyReady,
		},
		{
			name:        "untracked file is ignored",
			event:       ports.FileEvent{Operation: ports.FileRemoved, Path: "/docs/other.pdf"},
			setup:       func(m testMocks) {},
			wantHandled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)
			ws := newTestWorkspace(t, "research", "/docs/a.pdf")
			m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)
			tt.setup(m)

			watch := NewWatchService(svc, nil)
			update, handled := watch.HandleEvent(context.Background(), "research", tt.event)

			assert.Equal(t, tt.wantHandled, handled)
			if !tt.wantHandled {
				return
			}
			require.NoError(t, update.Err)
			assert.Equal(t, tt.wantState, update.State)

			doc, ok := ws.Document(update.DocumentID)
			require.True(t, ok)
			assert.Equal(t, tt.wantState, doc.State())
			assert.Equal(t, tt.wantMessage, doc.ErrorMessage())
		})
	}
}

func TestWatchService_HandleEvent_AlreadyFailed(t *testing.T) {
	svc, m := newTestService(t)
	ws := newTestWorkspace(t, "research", "/docs/a.pdf")
	require.NoError(t, ws.MarkDocumentError(ws.Documents()[0].ID(), "file removed"))
	m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)

	_, handled := NewWatchService(svc, nil).HandleEvent(context.Background(), "research",
		ports.FileEvent{Operation: ports.FileRemoved, Path: "/docs/a.pdf"})

	assert.False(t, handled)
}

func TestWatchService_Watch(t *testing.T) {
	svc, m := newTestService(t)
	ws := newTestWorkspace(t, "research", "/docs/a.pdf", "/docs/b.pdf")
	watcher := portsmocks.NewMockFileWatcher(t)
	events := make(chan ports.FileEvent, 1)

	m.repo.EXPECT().GetByName(mock.Anything, "research").Return(ws, nil)
	m.repo.EXPECT().Save(mock.Anything, ws).Return(nil)
	watcher.EXPECT().Watch(mock.Anything, []string{"/docs/a.pdf", "/docs/b.pdf"}).
		Return((<-chan ports.FileEvent)(events), nil)
	watcher.EXPECT().Close().Return(nil)

	watch := NewWatchService(svc, func() (ports.FileWatcher, error) { return watcher, nil })
	updates, err := watch.Watch(context.Background(), "research")
	require.NoError(t, err)

	events <- ports.FileEvent{Operation: ports.FileRemoved, Path: "/docs/b.pdf"}

	select {
	case update := <-updates:
		assert.Equal(t, ws.Documents()[1].ID(), update.DocumentID)
		assert.Equal(t, domain.CaddyError, update.State)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for watch update")
	}

	close(events)
	for range updates {
	}
}

func TestWatchService_Watch_FactoryFails(t *testing.T) {
	svc, m := newTestService(t)
	m.repo.EXPECT().GetByName(mock.Anything, "research").Return(newTestWorkspace(t, "research"), nil)

	boom := errors.New("too many open files")
	watch := NewWatchService(svc, func() (ports.FileWatcher, error) { return nil, boom })

	_, err := watch.Watch(context.Background(), "research")
	assert.ErrorIs(t, err, boom)
}
