package layout

import (
	"fmt"
	"math"

	"github.com/renato0307/docdesk/internal/domain"
)

// IssueKind classifies a layout validation issue
type IssueKind string

const (
	IssueExceedsRight       IssueKind = "exceeds_right"
	IssueExceedsBottom      IssueKind = "exceeds_bottom"
	IssueNegativeCoordinate IssueKind = "negative_coordinate"
)

// LayoutIssue describes one caddy that breaks the workspace bounds
type LayoutIssue struct {
	DocumentID string
	Kind       IssueKind
	Message    string
}

// ValidationReport is the outcome of ValidateLayout
type ValidationReport struct {
	IsValid bool
	Issues  []LayoutIssue
}

// SnapToGrid rounds every position to the nearest multiple of gridSize.
// A non-positive gridSize uses the configured grid.
func (e *Engine) SnapToGrid(results []domain.DocumentLayoutResult, gridSize float64) []domain.DocumentLayoutResult {
	if gridSize <= 0 {
		gridSize = e.config.GridSize
	}
	snapped := make([]domain.DocumentLayoutResult, len(results))
	for i, r := range results {
		snapped[i] = r
		x := math.Round(r.Position.X()/gridSize) * gridSize
		y := math.Round(r.Position.Y()/gridSize) * gridSize
		if p, err := domain.NewPosition(x, y); err == nil {
			snapped[i].Position = p
		}
	}
	return snapped
}

// ValidateLayout reports caddies that leave the workspace. It never fails.
func (e *Engine) ValidateLayout(results []domain.DocumentLayoutResult, size domain.Dimensions) ValidationReport {
	report := ValidationReport{Issues: []LayoutIssue{}}
	for _, r := range results {
		x, y := r.Position.X(), r.Position.Y()
		if x < 0 || y < 0 {
			report.Issues = append(report.Issues, LayoutIssue{
				DocumentID: r.ID,
				Kind:       IssueNegativeCoordinate,
				Message:    fmt.Sprintf("document %s has a negative coordinate (%g, %g)", r.ID, x, y),
			})
		}
		if right := x + r.Dimensions.Width(); right > size.Width() {
			report.Issues = append(report.Issues, LayoutIssue{
				DocumentID: r.ID,
				Kind:       IssueExceedsRight,
				Message:    fmt.Sprintf("document %s exceeds the right edge by %g", r.ID, right-size.Width()),
			})
		}
		if bottom := y + r.Dimensions.Height(); bottom > size.Height() {
			report.Issues = append(report.Issues, LayoutIssue{
				DocumentID: r.ID,
				Kind:       IssueExceedsBottom,
				Message:    fmt.Sprintf("document %s exceeds the bottom edge by %g", r.ID, bottom-size.Height()),
			})
		}
	}
	report.IsValid = len(report.Issues) == 0
	return report
}
