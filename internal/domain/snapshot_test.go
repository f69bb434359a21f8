package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_RestoreRoundTrip(t *testing.T) {
	w := newTestWorkspace(t, WithLayoutMode(LayoutGrid))
	ids := addReady(t, w, 3)
	require.NoError(t, w.MarkDocumentError(ids[1], "broken"))
	require.NoError(t, w.ActivateDocument(ids[2]))

	snap := w.Snapshot()
	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded WorkspaceSnapshot
	require.NoError(t, json.Unmarshal(data, &decoded))

	restored, err := RestoreWorkspace(decoded)
	require.NoError(t, err)

	assert.Equal(t, w.ID(), restored.ID())
	assert.Equal(t, w.LayoutMode(), restored.LayoutMode())
	assert.Equal(t, w.ActiveDocumentID(), restored.ActiveDocumentID())
	assert.Equal(t, w.CalculateCurrentLayout(), restored.CalculateCurrentLayout())

	broken, ok := restored.Document(ids[1])
	require.True(t, ok)
	assert.Equal(t, CaddyError, broken.State())
	assert.Equal(t, "broken", broken.ErrorMessage())
}

func TestRestoreWorkspace_Rejects(t *testing.T) {
	base := func() WorkspaceSnapshot {
		w := newTestWorkspace(t)
		addReady(t, w, 2)
		return w.Snapshot()
	}

	tests := []struct {
		name   string
		mutate func(s *WorkspaceSnapshot)
	}{
		{"missing id", func(s *WorkspaceSnapshot) { s.ID = "" }},
		{"blank name", func(s *WorkspaceSnapshot) { s.Name = " " }},
		{"unknown mode", func(s *WorkspaceSnapshot) { s.LayoutMode = "tabs" }},
		{"tiny workspace", func(s *WorkspaceSnapshot) { s.WorkspaceSize = Dimensions{width: 10, height: 10} }},
		{"duplicate id", func(s *WorkspaceSnapshot) { s.Documents[1].ID = s.Documents[0].ID }},
		{"duplicate path", func(s *WorkspaceSnapshot) { s.Documents[1].FilePath = s.Documents[0].FilePath }},
		{"closing caddy", func(s *WorkspaceSnapshot) { s.Documents[1].State = CaddyClosing }},
		{"unknown state", func(s *WorkspaceSnapshot) { s.Documents[1].State = "zombie" }},
		{"negative z", func(s *WorkspaceSnapshot) { s.Documents[1].ZIndex = -2 }},
		{"two active", func(s *WorkspaceSnapshot) { s.Documents[1].IsActive = true }},
		{"dangling active id", func(s *WorkspaceSnapshot) {
			s.Documents[0].IsActive = false
			s.ActiveDocumentID = "doc_missing"
		}},
		{"active id not flagged", func(s *WorkspaceSnapshot) { s.Documents[0].IsActive = false }},
		{"bad geometry", func(s *WorkspaceSnapshot) { s.Documents[0].Dimensions = Dimensions{width: 1, height: 1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mutate(&s)

			_, err := RestoreWorkspace(s)
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}

func TestRestoreWorkspace_EmptyWorkspace(t *testing.T) {
	w := newTestWorkspace(t)

	restored, err := RestoreWorkspace(w.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, 0, restored.DocumentCount())
	assert.Empty(t, restored.ActiveDocumentID())
}
