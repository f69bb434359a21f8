package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const workspaceIDPrefix = "ws_"

// Workspace is the aggregate root owning every caddy on one canvas and the
// active layout policy. All caddy mutation goes through its methods.
type Workspace struct {
	activeDocumentID string
	createdAt        time.Time
	documents        map[string]*DocumentCaddy
	id               string
	lastModified     time.Time
	layoutMode       LayoutMode
	name             string
	now              func() time.Time
	order            []string
	workspaceSize    Dimensions
}

// WorkspaceOption customises a new Workspace
type WorkspaceOption func(*Workspace)

// WithClock replaces time.Now, mainly for deterministic tests
func WithClock(now func() time.Time) WorkspaceOption {
	return func(w *Workspace) {
		w.now = now
	}
}

// WithLayoutMode sets the initial layout mode (default stacked)
func WithLayoutMode(mode LayoutMode) WorkspaceOption {
	return func(w *Workspace) {
		w.layoutMode = mode
	}
}

// NewWorkspace creates an empty workspace
func NewWorkspace(name string, size Dimensions, opts ...WorkspaceOption) (*Workspace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if err := requireDimensions(size, "workspace size"); err != nil {
		return nil, err
	}

	w := &Workspace{
		documents:     make(map[string]*DocumentCaddy),
		id:            workspaceIDPrefix + uuid.New().String(),
		layoutMode:    LayoutStacked,
		name:          name,
		now:           time.Now,
		workspaceSize: size,
	}
	for _, opt := range opts {
		opt(w)
	}
	if err := w.layoutMode.Validate(); err != nil {
		return nil, err
	}
	w.createdAt = w.now()
	w.lastModified = w.createdAt
	return w, nil
}

func (w *Workspace) ID() string { return w.id }
func (w *Workspace) Name() string { return w.name }
func (w *Workspace) LayoutMode() LayoutMode { return w.layoutMode }
func (w *Workspace) WorkspaceSize() Dimensions { return w.workspaceSize }
func (w *Workspace) ActiveDocumentID() string { return w.activeDocumentID }
func (w *Workspace) CreatedAt() time.Time { return w.createdAt }
func (w *Workspace) LastModified() time.Time { return w.lastModified }
func (w *Workspace) DocumentCount() int { return len(w.order) }

// Rename changes the workspace name
func (w *Workspace) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	w.name = name
	w.touch()
	return nil
}

// Document returns a copy of the caddy with the given id
func (w *Workspace) Document(id string) (DocumentCaddy, bool) {
	c, ok := w.documents[id]
	if !ok {
		return DocumentCaddy{}, false
	}
	return *c, true
}

// DocumentByPath returns a copy of the caddy showing filePath
func (w *Workspace) DocumentByPath(filePath string) (DocumentCaddy, bool) {
	if c := w.findByPath(filePath); c != nil {
		return *c, true
	}
	return DocumentCaddy{}, false
}

// Documents returns copies of all caddies in insertion order
func (w *Workspace) Documents() []DocumentCaddy {
	docs := make([]DocumentCaddy, 0, len(w.order))
	for _, id := range w.order {
		docs = append(docs, *w.documents[id])
	}
	return docs
}

// ActiveDocument returns a copy of the active caddy, if any
func (w *Workspace) ActiveDocument() (DocumentCaddy, bool) {
	if w.activeDocumentID == "" {
		return DocumentCaddy{}, false
	}
	return w.Document(w.activeDocumentID)
}

// Placements returns layout input for all caddies in insertion order
func (w *Workspace) Placements() []Placement {
	placements := make([]Placement, 0, len(w.order))
	for _, id := range w.order {
		placements = append(placements, w.documents[id].Placement())
	}
	return placements
}

// MaxZIndex returns the highest z-index, or -1 for an empty workspace
func (w *Workspace) MaxZIndex() int {
	max := -1
	for _, c := range w.documents {
		if c.zIndex > max {
			max = c.zIndex
		}
	}
	return max
}

// DocumentOption customises AddDocument
type DocumentOption func(*documentOptions)

type documentOptions struct {
	dimensions *Dimensions
	position   *Position
}

// WithPosition places a new caddy at p instead of the cascade default
func WithPosition(p Position) DocumentOption {
	return func(o *documentOptions) {
		o.position = &p
	}
}

// WithDimensions sizes a new caddy at d instead of the default size
func WithDimensions(d Dimensions) DocumentOption {
	return func(o *documentOptions) {
		o.dimensions = &d
	}
}

// AddDocument opens filePath in a new loading caddy. Adding a path that is
// already open activates the existing caddy and returns it.
func (w *Workspace) AddDocument(filePath, title string, opts ...DocumentOption) (DocumentCaddy, error) {
	var o documentOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.dimensions != nil {
		if err := requireDimensions(*o.dimensions, "document size"); err != nil {
			return DocumentCaddy{}, err
		}
	}

	if existing := w.findByPath(filePath); existing != nil {
		if err := w.activate(existing); err != nil {
			return DocumentCaddy{}, err
		}
		return *existing, nil
	}

	dims := DefaultDimensions().ConstrainToMaximum(w.workspaceSize)
	if o.dimensions != nil {
		dims = *o.dimensions
	}
	pos := w.cascadePosition(len(w.order)).ConstrainToBounds(dims, w.workspaceSize)
	if o.position != nil {
		pos = *o.position
	}

	caddy := newDocumentCaddy(filePath, title, pos, dims, w.now)
	caddy.zIndex = w.MaxZIndex() + 1
	w.documents[caddy.id] = caddy
	w.order = append(w.order, caddy.id)

	if w.activeDocumentID == "" {
		caddy.Activate()
		w.activeDocumentID = caddy.id
	}
	w.touch()
	return *caddy, nil
}

// RemoveDocument closes and removes a caddy. It returns false for unknown ids.
// When the active caddy is removed the most recently modified remaining one
// becomes active.
func (w *Workspace) RemoveDocument(id string) bool {
	caddy, ok := w.documents[id]
	if !ok {
		return false
	}
	wasActive := w.activeDocumentID == id

	caddy.StartClosing()
	delete(w.documents, id)
	for i, oid := range w.order {
		if oid == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}

	if wasActive {
		w.activeDocumentID = ""
		if next := w.mostRecentlyModified(); next != nil {
			next.Activate()
			w.activeDocumentID = next.id
		}
	}
	w.touch()
	return true
}

// RemoveAllDocuments closes every caddy and clears the workspace
func (w *Workspace) RemoveAllDocuments() {
	for _, id := range w.order {
		w.documents[id].StartClosing()
	}
	w.documents = make(map[string]*DocumentCaddy)
	w.order = nil
	w.activeDocumentID = ""
	w.touch()
}

// ActivateDocument makes id the single active caddy and brings it to front
func (w *Workspace) ActivateDocument(id string) error {
	caddy, err := w.lookup(id)
	if err != nil {
		return err
	}
	return w.activate(caddy)
}

// MarkDocumentReady reports that the caddy's content finished loading
func (w *Workspace) MarkDocumentReady(id string) error {
	caddy, err := w.lookup(id)
	if err != nil {
		return err
	}
	if err := caddy.MarkReady(); err != nil {
		return err
	}
	w.touch()
	return nil
}

// MarkDocumentError reports that the caddy's content failed to load
func (w *Workspace) MarkDocumentError(id, message string) error {
	caddy, err := w.lookup(id)
	if err != nil {
		return err
	}
	if err := caddy.MarkError(message); err != nil {
		return err
	}
	w.touch()
	return nil
}

// ReloadDocument puts a caddy back into loading
func (w *Workspace) ReloadDocument(id string) error {
	caddy, err := w.lookup(id)
	if err != nil {
		return err
	}
	if err := caddy.Reload(); err != nil {
		return err
	}
	w.touch()
	return nil
}

// MoveDocument repositions a ready caddy. Outside freeform the workspace
// first switches to freeform, then the whole layout is recomputed and applied.
func (w *Workspace) MoveDocument(id string, newPosition Position) ([]DocumentLayoutResult, error) {
	caddy, err := w.lookup(id)
	if err != nil {
		return nil, err
	}
	if !caddy.CanMove() {
		return nil, caddy.stateError("move")
	}

	w.ensureFreeformForManualEdit()
	if err := caddy.MoveTo(newPosition); err != nil {
		return nil, err
	}
	return w.recalculate(), nil
}

// ResizeDocument resizes a ready caddy, with the same freeform fallback as MoveDocument
func (w *Workspace) ResizeDocument(id string, newDimensions Dimensions) ([]DocumentLayoutResult, error) {
	caddy, err := w.lookup(id)
	if err != nil {
		return nil, err
	}
	if !caddy.CanResize() {
		return nil, caddy.stateError("resize")
	}
	if err := requireDimensions(newDimensions, "document size"); err != nil {
		return nil, err
	}

	w.ensureFreeformForManualEdit()
	if err := caddy.Resize(newDimensions); err != nil {
		return nil, err
	}
	return w.recalculate(), nil
}

// ensureFreeformForManualEdit is the auto-freeform transition: a manual
// geometry edit outside freeform switches the whole workspace to freeform.
// It reports whether the mode changed.
func (w *Workspace) ensureFreeformForManualEdit() bool {
	if w.layoutMode.SupportsDragging() && w.layoutMode.SupportsResizing() {
		return false
	}
	w.layoutMode = LayoutFreeform
	w.touch()
	return true
}

// SwitchLayoutMode changes the layout policy and applies it. Switching to
// the current mode only recomputes, without mutating anything.
func (w *Workspace) SwitchLayoutMode(mode LayoutMode) ([]DocumentLayoutResult, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	if mode == w.layoutMode {
		return w.CalculateCurrentLayout(), nil
	}
	w.layoutMode = mode
	w.touch()
	return w.recalculate(), nil
}

// SetWorkspaceSize changes the canvas size. Policy layouts are recomputed;
// freeform caddies are pulled back inside the new bounds.
func (w *Workspace) SetWorkspaceSize(size Dimensions) ([]DocumentLayoutResult, error) {
	if err := requireDimensions(size, "workspace size"); err != nil {
		return nil, err
	}
	w.workspaceSize = size
	w.touch()
	if w.layoutMode != LayoutFreeform {
		return w.recalculate(), nil
	}

	results := w.CalculateCurrentLayout()
	for i := range results {
		dims := results[i].Dimensions.ConstrainToMaximum(size).EnforceMinimum(MinimumDimensions())
		results[i].Dimensions = dims
		results[i].Position = results[i].Position.ConstrainToBounds(dims, size)
	}
	w.ApplyLayout(results)
	return results, nil
}

// CalculateCurrentLayout projects the active mode over all caddies. It is pure.
func (w *Workspace) CalculateCurrentLayout() []DocumentLayoutResult {
	return w.layoutMode.Calculate(w.Placements(), w.workspaceSize, w.activeDocumentID)
}

// ApplyLayout writes computed geometry back onto the caddies. Unknown ids are ignored.
func (w *Workspace) ApplyLayout(results []DocumentLayoutResult) {
	for _, r := range results {
		if caddy, ok := w.documents[r.ID]; ok {
			caddy.place(r)
		}
	}
	w.touch()
}

// requireDimensions rejects the zero Dimensions, which no constructor produces
func requireDimensions(d Dimensions, what string) error {
	if d.IsZero() {
		return newGeometryError("dimensions", "%s is required", what)
	}
	return nil
}

func (w *Workspace) recalculate() []DocumentLayoutResult {
	results := w.CalculateCurrentLayout()
	w.ApplyLayout(results)
	return results
}

func (w *Workspace) activate(target *DocumentCaddy) error {
	if !target.CanActivate() {
		return target.stateError("activate")
	}
	if w.activeDocumentID != "" && w.activeDocumentID != target.id {
		if current, ok := w.documents[w.activeDocumentID]; ok {
			current.Deactivate()
		}
	}
	maxZ := w.MaxZIndex()
	target.Activate()
	target.BringToFront(maxZ)
	w.activeDocumentID = target.id
	w.touch()
	return nil
}

func (w *Workspace) lookup(id string) (*DocumentCaddy, error) {
	caddy, ok := w.documents[id]
	if !ok {
		return nil, &DocumentNotFoundError{DocumentID: id, WorkspaceID: w.id}
	}
	return caddy, nil
}

func (w *Workspace) findByPath(filePath string) *DocumentCaddy {
	for _, id := range w.order {
		if c := w.documents[id]; c.filePath == filePath {
			return c
		}
	}
	return nil
}

// mostRecentlyModified picks the remaining caddy with the latest
// lastModified; on a tie the one opened later wins.
func (w *Workspace) mostRecentlyModified() *DocumentCaddy {
	var best *DocumentCaddy
	for _, id := range w.order {
		c := w.documents[id]
		if best == nil || !c.lastModified.Before(best.lastModified) {
			best = c
		}
	}
	return best
}

func (w *Workspace) cascadePosition(index int) Position {
	offset := float64(index) * StackOffset
	return Position{x: StackAnchorX + offset, y: StackAnchorY + offset}
}

func (w *Workspace) touch() {
	w.lastModified = w.now()
}
