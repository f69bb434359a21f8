package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CaddyState represents the lifecycle state of a document caddy
type CaddyState string

const (
	CaddyLoading CaddyState = "loading"
	CaddyReady   CaddyState = "ready"
	CaddyError   CaddyState = "error"
	CaddyClosing CaddyState = "closing"
)

// Valid reports whether s is one of the known states
func (s CaddyState) Valid() bool {
	switch s {
	case CaddyLoading, CaddyReady, CaddyError, CaddyClosing:
		return true
	}
	return false
}

// Status symbols used by list output and the canvas
const (
	SymbolLoading = "◌"
	SymbolReady   = "●"
	SymbolError   = "✗"
	SymbolClosing = "◍"
)

// Symbol returns the display symbol for the state
func (s CaddyState) Symbol() string {
	switch s {
	case CaddyReady:
		return SymbolReady
	case CaddyError:
		return SymbolError
	case CaddyClosing:
		return SymbolClosing
	default:
		return SymbolLoading
	}
}

// caddyIDPrefix marks caddy ids so they are distinguishable from workspace ids
const caddyIDPrefix = "doc_"

// DocumentCaddy is the on-canvas container of one open document.
// It is owned by a single Workspace, which is its only mutator.
type DocumentCaddy struct {
	createdAt    time.Time
	dimensions   Dimensions
	errorMessage string
	filePath     string
	id           string
	isActive     bool
	lastModified time.Time
	now          func() time.Time
	position     Position
	state        CaddyState
	title        string
	zIndex       int
}

func newDocumentCaddy(filePath, title string, position Position, dimensions Dimensions, now func() time.Time) *DocumentCaddy {
	ts := now()
	return &DocumentCaddy{
		createdAt:    ts,
		dimensions:   dimensions,
		filePath:     filePath,
		id:           caddyIDPrefix + uuid.New().String(),
		lastModified: ts,
		now:          now,
		position:     position,
		state:        CaddyLoading,
		title:        title,
	}
}

func (c *DocumentCaddy) ID() string { return c.id }
func (c *DocumentCaddy) FilePath() string { return c.filePath }
func (c *DocumentCaddy) Title() string { return c.title }
func (c *DocumentCaddy) Position() Position { return c.position }
func (c *DocumentCaddy) Dimensions() Dimensions { return c.dimensions }
func (c *DocumentCaddy) IsActive() bool { return c.isActive }
func (c *DocumentCaddy) ZIndex() int { return c.zIndex }
func (c *DocumentCaddy) State() CaddyState { return c.state }
func (c *DocumentCaddy) ErrorMessage() string { return c.errorMessage }
func (c *DocumentCaddy) CreatedAt() time.Time { return c.createdAt }
func (c *DocumentCaddy) LastModified() time.Time { return c.lastModified }

// CanMove reports whether the caddy accepts a position change
func (c *DocumentCaddy) CanMove() bool {
	return c.state == CaddyReady
}

// CanResize reports whether the caddy accepts a size change
func (c *DocumentCaddy) CanResize() bool {
	return c.state == CaddyReady
}

// CanActivate reports whether the caddy may become the active one.
// Loading and errored caddies can be focused; closing ones cannot.
func (c *DocumentCaddy) CanActivate() bool {
	return c.state != CaddyClosing
}

// MarkReady moves a loading caddy to ready and clears any error message
func (c *DocumentCaddy) MarkReady() error {
	if c.state != CaddyLoading {
		return c.stateError("mark ready")
	}
	c.state = CaddyReady
	c.errorMessage = ""
	c.touch()
	return nil
}

// MarkError stores message and moves the caddy to error.
// A closing caddy stays closing.
func (c *DocumentCaddy) MarkError(message string) error {
	if c.state == CaddyClosing {
		return c.stateError("mark error")
	}
	c.state = CaddyError
	c.errorMessage = message
	c.touch()
	return nil
}

// Reload puts an errored or ready caddy back into loading
func (c *DocumentCaddy) Reload() error {
	if c.state == CaddyClosing {
		return c.stateError("reload")
	}
	c.state = CaddyLoading
	c.touch()
	return nil
}

// StartClosing is terminal: no further mutation is accepted afterwards
func (c *DocumentCaddy) StartClosing() {
	c.state = CaddyClosing
	c.isActive = false
	c.touch()
}

// MoveTo changes the caddy position
func (c *DocumentCaddy) MoveTo(p Position) error {
	if !c.CanMove() {
		return c.stateError("move")
	}
	c.position = p
	c.touch()
	return nil
}

// Resize changes the caddy dimensions
func (c *DocumentCaddy) Resize(d Dimensions) error {
	if !c.CanResize() {
		return c.stateError("resize")
	}
	c.dimensions = d
	c.touch()
	return nil
}

// Activate sets the active flag. Single-active is enforced by the Workspace.
func (c *DocumentCaddy) Activate() {
	c.isActive = true
	c.touch()
}

// Deactivate clears the active flag
func (c *DocumentCaddy) Deactivate() {
	c.isActive = false
	c.touch()
}

// BringToFront places the caddy directly above currentMaxZ
func (c *DocumentCaddy) BringToFront(currentMaxZ int) {
	c.zIndex = currentMaxZ + 1
	c.touch()
}

// SetZIndex sets the stacking order
func (c *DocumentCaddy) SetZIndex(z int) error {
	if z < 0 {
		return fmt.Errorf("z-index must be non-negative, got %d: %w", z, ErrInvalidState)
	}
	c.zIndex = z
	c.touch()
	return nil
}

// Placement returns the caddy's current geometry as layout input
func (c *DocumentCaddy) Placement() Placement {
	return Placement{
		Dimensions: c.dimensions,
		ID:         c.id,
		IsActive:   c.isActive,
		Position:   c.position,
		ZIndex:     c.zIndex,
	}
}

// place writes computed geometry without touching lastModified; layout
// application is not a user edit.
func (c *DocumentCaddy) place(r DocumentLayoutResult) {
	c.position = r.Position
	c.dimensions = r.Dimensions
	if r.ZIndex >= 0 {
		c.zIndex = r.ZIndex
	}
}

func (c *DocumentCaddy) touch() {
	c.lastModified = c.now()
}

func (c *DocumentCaddy) stateError(op string) error {
	return &CaddyStateError{CaddyID: c.id, Operation: op, State: c.state}
}
