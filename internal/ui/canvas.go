package ui

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/renato0307/docdesk/internal/domain"
	"github.com/renato0307/docdesk/internal/layout"
	"github.com/renato0307/docdesk/internal/services"
	"github.com/renato0307/docdesk/internal/theme"
)

// animationDuration is the time each caddy takes to reach its new geometry,
// on top of its stagger delay
const animationDuration = 250 * time.Millisecond

// canvasItem is one caddy as drawn on the terminal, in workspace pixels
type canvasItem struct {
	active  bool
	h, w    float64
	id      string
	message string
	state   domain.CaddyState
	title   string
	x, y    float64
	z       int
}

type cell struct {
	owner int // index into the drawn items, -1 for background
	r     rune
}

type boxRunes struct {
	bl, br, h, tl, tr, v rune
}

var (
	roundBox = boxRunes{tl: '╭', tr: '╮', bl: '╰', br: '╯', h: '─', v: '│'}
	thickBox = boxRunes{tl: '┏', tr: '┓', bl: '┗', br: '┛', h: '━', v: '┃'}
)

// canvasItems joins the computed layout with the caddies it places. Hidden
// results are dropped. When an animation is running the geometry is
// interpolated from where each caddy was.
func canvasItems(report services.LayoutReport, animation []layout.AnimatedLayoutResult, elapsed time.Duration) []canvasItem {
	if report.Workspace == nil {
		return nil
	}
	animated := make(map[string]layout.AnimatedLayoutResult, len(animation))
	for _, a := range animation {
		animated[a.ID] = a
	}

	items := make([]canvasItem, 0, len(report.Results))
	for _, r := range report.Results {
		if !r.IsVisible {
			continue
		}
		doc, ok := report.Workspace.Document(r.ID)
		if !ok {
			continue
		}
		item := canvasItem{
			active:  doc.IsActive(),
			h:       r.Dimensions.Height(),
			id:      r.ID,
			message: doc.ErrorMessage(),
			state:   doc.State(),
			title:   doc.Title(),
			w:       r.Dimensions.Width(),
			x:       r.Position.X(),
			y:       r.Position.Y(),
			z:       r.ZIndex,
		}
		if a, ok := animated[r.ID]; ok {
			item.x, item.y, item.w, item.h = interpolate(a, elapsed)
		}
		items = append(items, item)
	}
	return items
}

// interpolate returns the geometry of an animated caddy elapsed after the
// animation started, easing out towards the target
func interpolate(a layout.AnimatedLayoutResult, elapsed time.Duration) (x, y, w, h float64) {
	t := float64(elapsed-a.StaggerDelay) / float64(animationDuration)
	t = math.Max(0, math.Min(1, t))
	t = 1 - (1-t)*(1-t)

	lerp := func(from, to float64) float64 { return from + (to-from)*t }
	return lerp(a.FromPosition.X(), a.Position.X()),
		lerp(a.FromPosition.Y(), a.Position.Y()),
		lerp(a.FromDimensions.Width(), a.Dimensions.Width()),
		lerp(a.FromDimensions.Height(), a.Dimensions.Height())
}

// animationDone reports whether every caddy reached its target
func animationDone(animation []layout.AnimatedLayoutResult, elapsed time.Duration) bool {
	var last time.Duration
	for _, a := range animation {
		last = max(last, a.StaggerDelay)
	}
	return elapsed >= last+animationDuration
}

// renderCanvas scales the workspace onto a cols x rows character grid and
// draws the caddies as boxes, lowest z-index first
func renderCanvas(items []canvasItem, size domain.Dimensions, cols, rows int) string {
	if cols <= 0 || rows <= 0 || size.IsZero() {
		return ""
	}

	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, cols)
		for c := range grid[r] {
			grid[r][c] = cell{owner: -1, r: ' '}
		}
	}

	ordered := make([]canvasItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].z < ordered[j].z })

	sx := float64(cols) / size.Width()
	sy := float64(rows) / size.Height()
	styles := make([]lipgloss.Style, len(ordered))

	for i, it := range ordered {
		c0, c1 := span(it.x*sx, (it.x+it.w)*sx, cols)
		r0, r1 := span(it.y*sy, (it.y+it.h)*sy, rows)
		if c1-c0 < 2 || r1-r0 < 2 {
			continue
		}

		box := roundBox
		color := theme.StateColor(it.state)
		if it.active {
			box = thickBox
			color = theme.ColorActive
		}
		styles[i] = lipgloss.NewStyle().Foreground(color)

		for r := r0; r < r1; r++ {
			for c := c0; c < c1; c++ {
				grid[r][c] = cell{owner: i, r: boxRune(box, r, c, r0, r1, c0, c1)}
			}
		}

		inner := c1 - c0 - 2
		writeText(grid[r0], c0+1, inner, " "+it.state.Symbol()+" "+it.title+" ", i)
		if r1-r0 > 2 {
			body := string(it.state)
			if it.message != "" {
				body = it.message
			}
			writeText(grid[r0+1], c0+1, inner, body, i)
		}
	}

	var b strings.Builder
	for r, line := range grid {
		if r > 0 {
			b.WriteByte('\n')
		}
		renderLine(&b, line, styles)
	}
	return b.String()
}

// span maps a [from, to) range of scaled coordinates onto cell indexes
// within [0, limit), keeping at least two cells when there is room
func span(from, to float64, limit int) (int, int) {
	lo := int(math.Floor(from))
	hi := int(math.Ceil(to))
	lo = max(0, min(lo, limit))
	hi = max(0, min(hi, limit))
	if hi-lo < 2 {
		hi = min(lo+2, limit)
		lo = max(hi-2, 0)
	}
	return lo, hi
}

func boxRune(box boxRunes, r, c, r0, r1, c0, c1 int) rune {
	top, bottom := r == r0, r == r1-1
	left, right := c == c0, c == c1-1
	switch {
	case top && left:
		return box.tl
	case top && right:
		return box.tr
	case bottom && left:
		return box.bl
	case bottom && right:
		return box.br
	case top || bottom:
		return box.h
	case left || right:
		return box.v
	}
	return ' '
}

func writeText(row []cell, start, width int, text string, owner int) {
	if width <= 0 {
		return
	}
	text = ansi.Truncate(text, width, "…")
	c := start
	for _, r := range text {
		if c >= start+width || c >= len(row) {
			return
		}
		row[c] = cell{owner: owner, r: r}
		c++
	}
}

func renderLine(b *strings.Builder, line []cell, styles []lipgloss.Style) {
	var run strings.Builder
	owner := line[0].owner
	flush := func() {
		if owner < 0 {
			b.WriteString(theme.CanvasStyle.Render(run.String()))
		} else {
			b.WriteString(styles[owner].Render(run.String()))
		}
		run.Reset()
	}
	for _, c := range line {
		if c.owner != owner {
			flush()
			owner = c.owner
		}
		run.WriteRune(c.r)
	}
	flush()
}
