package layout

import (
	"github.com/renato0307/docdesk/internal/domain"
)

type rect struct {
	x, y, w, h float64
}

func rectOf(p domain.Position, d domain.Dimensions) rect {
	return rect{x: p.X(), y: p.Y(), w: d.Width(), h: d.Height()}
}

// overlaps reports whether two rects intersect once padding is kept between them
func (r rect) overlaps(o rect, padding float64) bool {
	disjointX := r.x+r.w+padding <= o.x || o.x+o.w+padding <= r.x
	disjointY := r.y+r.h+padding <= o.y || o.y+o.h+padding <= r.y
	return !(disjointX || disjointY)
}

// CalculateNonOverlappingLayout places caddies greedily in input order so that
// no two rects overlap within padding. A caddy that does not fit within the
// attempt budget keeps its original position and its id is returned in
// fallback; the layout as a whole never fails.
func (e *Engine) CalculateNonOverlappingLayout(docs []domain.Placement, size domain.Dimensions, padding float64) (results []domain.DocumentLayoutResult, fallback []string) {
	if padding < 0 {
		padding = 0
	}
	results = make([]domain.DocumentLayoutResult, 0, len(docs))
	placed := make([]rect, 0, len(docs))

	for _, d := range docs {
		pos, ok := e.findFreePosition(d.Position, d.Dimensions, size, placed, padding)
		if !ok {
			pos = d.Position
			fallback = append(fallback, d.ID)
		}
		placed = append(placed, rectOf(pos, d.Dimensions))
		results = append(results, domain.DocumentLayoutResult{
			Dimensions: d.Dimensions,
			ID:         d.ID,
			IsVisible:  true,
			Position:   pos,
			ZIndex:     d.ZIndex,
		})
	}
	e.remember(results)
	return results, fallback
}

func (e *Engine) findFreePosition(start domain.Position, dims domain.Dimensions, size domain.Dimensions, placed []rect, padding float64) (domain.Position, bool) {
	if !collides(rectOf(start, dims), placed, padding) {
		return start, true
	}

	x, y := start.X(), start.Y()
	for attempt := 0; attempt < e.config.NonOverlapMaxAttempts; attempt++ {
		x, y = e.nextCandidate(x, y, dims, size)
		candidate, err := domain.NewPosition(x, y)
		if err != nil {
			continue
		}
		if !collides(rectOf(candidate, dims), placed, padding) {
			return candidate, true
		}
	}
	return start, false
}

// nextCandidate steps right, wraps to the next row at the right edge and
// back to the top at the bottom edge
func (e *Engine) nextCandidate(x, y float64, dims, size domain.Dimensions) (float64, float64) {
	step := e.config.NonOverlapStep
	x += step
	if x+dims.Width() > size.Width() {
		x = 0
		y += step
	}
	if y+dims.Height() > size.Height() {
		y = 0
	}
	return x, y
}

func collides(r rect, placed []rect, padding float64) bool {
	for _, p := range placed {
		if r.overlaps(p, padding) {
			return true
		}
	}
	return false
}

// CountOverlaps returns how many result pairs overlap within padding
func CountOverlaps(results []domain.DocumentLayoutResult, padding float64) int {
	n := 0
	for i := range results {
		a := rectOf(results[i].Position, results[i].Dimensions)
		for j := i + 1; j < len(results); j++ {
			if a.overlaps(rectOf(results[j].Position, results[j].Dimensions), padding) {
				n++
			}
		}
	}
	return n
}
