package domain

import (
	"fmt"
	"strings"
	"time"
)

// WorkspaceSnapshot is the lossless serialisable form of a Workspace,
// consumed by persistence and export adapters
type WorkspaceSnapshot struct {
	ActiveDocumentID string             `json:"activeDocumentId,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	Documents        []DocumentSnapshot `json:"documents"`
	ID               string             `json:"id"`
	LastModified     time.Time          `json:"lastModified"`
	LayoutMode       LayoutMode         `json:"layoutMode"`
	Name             string             `json:"name"`
	WorkspaceSize    Dimensions         `json:"workspaceSize"`
}

// DocumentSnapshot is the serialisable form of a DocumentCaddy
type DocumentSnapshot struct {
	CreatedAt    time.Time  `json:"createdAt"`
	Dimensions   Dimensions `json:"dimensions"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	FilePath     string     `json:"filePath"`
	ID           string     `json:"id"`
	IsActive     bool       `json:"isActive"`
	LastModified time.Time  `json:"lastModified"`
	Position     Position   `json:"position"`
	State        CaddyState `json:"state"`
	Title        string     `json:"title"`
	ZIndex       int        `json:"zIndex"`
}

// Snapshot captures the workspace and its caddies in insertion order
func (w *Workspace) Snapshot() WorkspaceSnapshot {
	docs := make([]DocumentSnapshot, 0, len(w.order))
	for _, id := range w.order {
		c := w.documents[id]
		docs = append(docs, DocumentSnapshot{
			CreatedAt:    c.createdAt,
			Dimensions:   c.dimensions,
			ErrorMessage: c.errorMessage,
			FilePath:     c.filePath,
			ID:           c.id,
			IsActive:     c.isActive,
			LastModified: c.lastModified,
			Position:     c.position,
			State:        c.state,
			Title:        c.title,
			ZIndex:       c.zIndex,
		})
	}
	return WorkspaceSnapshot{
		ActiveDocumentID: w.activeDocumentID,
		CreatedAt:        w.createdAt,
		Documents:        docs,
		ID:               w.id,
		LastModified:     w.lastModified,
		LayoutMode:       w.layoutMode,
		Name:             w.name,
		WorkspaceSize:    w.workspaceSize,
	}
}

// RestoreWorkspace rebuilds a Workspace from a snapshot, re-validating every
// invariant. Errors wrap ErrInvalidSnapshot.
func RestoreWorkspace(s WorkspaceSnapshot, opts ...WorkspaceOption) (*Workspace, error) {
	if strings.TrimSpace(s.ID) == "" {
		return nil, invalidSnapshot("missing workspace id")
	}
	if strings.TrimSpace(s.Name) == "" {
		return nil, invalidSnapshot("%v", ErrInvalidName)
	}
	if err := s.LayoutMode.Validate(); err != nil {
		return nil, invalidSnapshot("%v", err)
	}
	if _, err := NewDimensions(s.WorkspaceSize.width, s.WorkspaceSize.height); err != nil {
		return nil, invalidSnapshot("workspace size: %v", err)
	}

	w := &Workspace{
		activeDocumentID: s.ActiveDocumentID,
		createdAt:        s.CreatedAt,
		documents:        make(map[string]*DocumentCaddy, len(s.Documents)),
		id:               s.ID,
		lastModified:     s.LastModified,
		layoutMode:       s.LayoutMode,
		name:             strings.TrimSpace(s.Name),
		now:              time.Now,
		workspaceSize:    s.WorkspaceSize,
	}
	for _, opt := range opts {
		opt(w)
	}

	paths := make(map[string]string, len(s.Documents))
	activeCount := 0
	for _, d := range s.Documents {
		if err := validateDocumentSnapshot(d); err != nil {
			return nil, err
		}
		if _, dup := w.documents[d.ID]; dup {
			return nil, invalidSnapshot("duplicate document id %s", d.ID)
		}
		if other, dup := paths[d.FilePath]; dup {
			return nil, invalidSnapshot("documents %s and %s share file path %s", other, d.ID, d.FilePath)
		}
		paths[d.FilePath] = d.ID

		if d.IsActive {
			activeCount++
			if d.ID != s.ActiveDocumentID {
				return nil, invalidSnapshot("document %s is active but active id is %q", d.ID, s.ActiveDocumentID)
			}
		}

		w.documents[d.ID] = &DocumentCaddy{
			createdAt:    d.CreatedAt,
			dimensions:   d.Dimensions,
			errorMessage: d.ErrorMessage,
			filePath:     d.FilePath,
			id:           d.ID,
			isActive:     d.IsActive,
			lastModified: d.LastModified,
			now:          w.now,
			position:     d.Position,
			state:        d.State,
			title:        d.Title,
			zIndex:       d.ZIndex,
		}
		w.order = append(w.order, d.ID)
	}

	if activeCount > 1 {
		return nil, invalidSnapshot("%d documents are active", activeCount)
	}
	if s.ActiveDocumentID != "" {
		if _, ok := w.documents[s.ActiveDocumentID]; !ok {
			return nil, invalidSnapshot("active document %s does not exist", s.ActiveDocumentID)
		}
		if activeCount == 0 {
			return nil, invalidSnapshot("active document %s is not flagged active", s.ActiveDocumentID)
		}
	}
	return w, nil
}

func validateDocumentSnapshot(d DocumentSnapshot) error {
	if strings.TrimSpace(d.ID) == "" {
		return invalidSnapshot("document without id")
	}
	if d.FilePath == "" {
		return invalidSnapshot("document %s has no file path", d.ID)
	}
	if !d.State.Valid() {
		return invalidSnapshot("document %s has unknown state %q", d.ID, d.State)
	}
	if d.State == CaddyClosing {
		return invalidSnapshot("document %s is closing", d.ID)
	}
	if d.ZIndex < 0 {
		return invalidSnapshot("document %s has negative z-index %d", d.ID, d.ZIndex)
	}
	if _, err := NewPosition(d.Position.x, d.Position.y); err != nil {
		return invalidSnapshot("document %s: %v", d.ID, err)
	}
	if _, err := NewDimensions(d.Dimensions.width, d.Dimensions.height); err != nil {
		return invalidSnapshot("document %s: %v", d.ID, err)
	}
	return nil
}

func invalidSnapshot(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSnapshot, fmt.Sprintf(format, args...))
}
