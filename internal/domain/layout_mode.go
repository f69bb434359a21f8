package domain

import (
	"fmt"
	"math"
	"strings"
)

// LayoutMode is the placement policy of a workspace. The set of modes is
// closed; every switch over it must handle all three.
type LayoutMode string

const (
	LayoutStacked  LayoutMode = "stacked"
	LayoutGrid     LayoutMode = "grid"
	LayoutFreeform LayoutMode = "freeform"
)

// LayoutModes lists every mode in display order
var LayoutModes = []LayoutMode{LayoutStacked, LayoutGrid, LayoutFreeform}

// Stacked-mode cascade constants
const (
	StackAnchorX = 20.0
	StackAnchorY = 20.0
	StackOffset  = 30.0
)

// Placement is a read-only snapshot of one caddy's geometry, used as
// layout input
type Placement struct {
	Dimensions Dimensions
	ID         string
	IsActive   bool
	Position   Position
	ZIndex     int
}

// DocumentLayoutResult is the computed placement of one caddy
type DocumentLayoutResult struct {
	Dimensions Dimensions
	ID         string
	IsVisible  bool
	Position   Position
	ZIndex     int
}

// ParseLayoutMode converts a user-supplied string into a LayoutMode
func ParseLayoutMode(s string) (LayoutMode, error) {
	mode := LayoutMode(strings.ToLower(strings.TrimSpace(s)))
	if err := mode.Validate(); err != nil {
		return "", err
	}
	return mode, nil
}

// Validate returns ErrUnknownLayoutMode for anything outside the closed set
func (m LayoutMode) Validate() error {
	switch m {
	case LayoutStacked, LayoutGrid, LayoutFreeform:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownLayoutMode, string(m))
}

// String returns the mode name
func (m LayoutMode) String() string {
	return string(m)
}

// SupportsDragging reports whether manual moves persist in this mode.
// Like the other mode methods it expects a mode that passed Validate.
func (m LayoutMode) SupportsDragging() bool {
	switch m {
	case LayoutFreeform:
		return true
	case LayoutStacked, LayoutGrid:
		return false
	}
	panic(fmt.Sprintf("unhandled layout mode %q", string(m)))
}

// SupportsResizing reports whether manual resizes persist in this mode
func (m LayoutMode) SupportsResizing() bool {
	switch m {
	case LayoutFreeform:
		return true
	case LayoutStacked, LayoutGrid:
		return false
	}
	panic(fmt.Sprintf("unhandled layout mode %q", string(m)))
}

// Calculate maps placements to new layout results. It never mutates its input.
// activeID may be empty; placements flagged IsActive are used as a fallback.
// m must be valid: Workspace only stores validated modes and layout.Engine
// validates before calling.
func (m LayoutMode) Calculate(docs []Placement, workspaceSize Dimensions, activeID string) []DocumentLayoutResult {
	if len(docs) == 0 {
		return []DocumentLayoutResult{}
	}
	if activeID == "" {
		for _, d := range docs {
			if d.IsActive {
				activeID = d.ID
				break
			}
		}
	}

	switch m {
	case LayoutStacked:
		return calculateStacked(docs, activeID)
	case LayoutGrid:
		return calculateGrid(docs, workspaceSize)
	case LayoutFreeform:
		return calculateFreeform(docs, activeID)
	}
	panic(fmt.Sprintf("unhandled layout mode %q", string(m)))
}

// calculateStacked cascades caddies from a common anchor by a fixed
// per-index offset so every edge stays visible
func calculateStacked(docs []Placement, activeID string) []DocumentLayoutResult {
	results := make([]DocumentLayoutResult, len(docs))
	for i, d := range docs {
		offset := float64(i) * StackOffset
		z := i
		if d.ID == activeID {
			z = len(docs)
		}
		results[i] = DocumentLayoutResult{
			Dimensions: d.Dimensions,
			ID:         d.ID,
			IsVisible:  true,
			Position:   Position{x: StackAnchorX + offset, y: StackAnchorY + offset},
			ZIndex:     z,
		}
	}
	return results
}

// GridShape returns the column and row count used for n caddies
func GridShape(n int) (cols, rows int) {
	if n <= 0 {
		return 0, 0
	}
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = int(math.Ceil(float64(n) / float64(cols)))
	return cols, rows
}

// calculateGrid tiles caddies row-major in iteration order with equal cells
func calculateGrid(docs []Placement, workspaceSize Dimensions) []DocumentLayoutResult {
	cols, rows := GridShape(len(docs))
	cell := Dimensions{
		width:  workspaceSize.width / float64(cols),
		height: workspaceSize.height / float64(rows),
	}.EnforceMinimum(MinimumDimensions())

	results := make([]DocumentLayoutResult, len(docs))
	for i, d := range docs {
		col := i % cols
		row := i / cols
		results[i] = DocumentLayoutResult{
			Dimensions: cell,
			ID:         d.ID,
			IsVisible:  true,
			Position:   Position{x: float64(col) * cell.width, y: float64(row) * cell.height},
			ZIndex:     i,
		}
	}
	return results
}

// calculateFreeform keeps every placement and lifts the active caddy
// directly above all others. Repeated calls are stable.
func calculateFreeform(docs []Placement, activeID string) []DocumentLayoutResult {
	maxOther := -1
	for _, d := range docs {
		if d.ID != activeID && d.ZIndex > maxOther {
			maxOther = d.ZIndex
		}
	}

	results := make([]DocumentLayoutResult, len(docs))
	for i, d := range docs {
		z := d.ZIndex
		if d.ID == activeID {
			z = maxOther + 1
		}
		results[i] = DocumentLayoutResult{
			Dimensions: d.Dimensions,
			ID:         d.ID,
			IsVisible:  true,
			Position:   d.Position,
			ZIndex:     z,
		}
	}
	return results
}
