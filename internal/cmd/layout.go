package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/docdesk/internal/domain"
)

// LayoutCmd switches and inspects layouts
type LayoutCmd struct {
	Animate  LayoutAnimateCmd  `cmd:"animate" help:"Switch mode and print the transition"`
	Arrange  LayoutArrangeCmd  `cmd:"arrange" help:"Rearrange documents so none overlap"`
	Mode     LayoutModeCmd     `cmd:"mode" help:"Switch the layout mode"`
	Show     LayoutShowCmd     `cmd:"show" help:"Show the computed layout"`
	Snap     LayoutSnapCmd     `cmd:"snap" help:"Snap document positions to a grid"`
	Suggest  LayoutSuggestCmd  `cmd:"suggest" help:"Suggest a layout mode for the workspace"`
	Validate LayoutValidateCmd `cmd:"validate" help:"Check that every document fits the workspace"`
}

// LayoutModeCmd switches the layout mode
type LayoutModeCmd struct {
	Workspace string `arg:"" help:"Workspace name"`
	Mode      string `arg:"" help:"stacked, grid or freeform"`
}

// Run executes the mode command
func (l *LayoutModeCmd) Run(container *Container) error {
	mode, err := domain.ParseLayoutMode(l.Mode)
	if err != nil {
		return err
	}
	results, err := container.WorkspaceService.SwitchLayoutMode(context.Background(), l.Workspace, mode)
	if err != nil {
		return err
	}
	fmt.Printf("Layout of '%s' switched to %s\n\n", l.Workspace, mode)
	printResults(results)
	return nil
}

// LayoutAnimateCmd switches the mode and prints the animation plan
type LayoutAnimateCmd struct {
	Workspace string `arg:"" help:"Workspace name"`
	Mode      string `arg:"" help:"stacked, grid or freeform"`
}

// Run executes the animate command
func (l *LayoutAnimateCmd) Run(container *Container) error {
	mode, err := domain.ParseLayoutMode(l.Mode)
	if err != nil {
		return err
	}
	animated, err := container.WorkspaceService.AnimateLayoutMode(context.Background(), l.Workspace, mode)
	if err != nil {
		return err
	}

	w := newTabWriter()
	fmt.Fprintln(w, "ID\tFROM\tTO\tDELAY")
	for _, a := range animated {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID,
			formatGeometry(a.FromPosition, a.FromDimensions),
			formatGeometry(a.Position, a.Dimensions),
			a.StaggerDelay)
	}
	return w.Flush()
}

// LayoutShowCmd prints the current layout
type LayoutShowCmd struct {
	Format    string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Workspace string `arg:"" help:"Workspace name"`
}

// Run executes the show command
func (l *LayoutShowCmd) Run(container *Container) error {
	report, err := container.WorkspaceService.Layout(context.Background(), l.Workspace)
	if err != nil {
		return err
	}

	if l.Format == "json" {
		return printJSON(map[string]any{
			"issues":     report.Report.Issues,
			"mode":       report.Workspace.LayoutMode(),
			"results":    report.Results,
			"suggestion": report.Suggestion,
			"valid":      report.Report.IsValid,
		})
	}

	fmt.Printf("Mode: %s (suggested: %s)\n\n", report.Workspace.LayoutMode(), report.Suggestion)
	printResults(report.Results)
	if !report.Report.IsValid {
		fmt.Printf("\n%d layout issues, run 'docdesk layout validate %s' for details\n", len(report.Report.Issues), l.Workspace)
	}
	return nil
}

// LayoutArrangeCmd removes overlaps
type LayoutArrangeCmd struct {
	Padding   float64 `help:"Minimum gap between documents (negative uses settings)" default:"-1"`
	Workspace string  `arg:"" help:"Workspace name"`
}

// Run executes the arrange command
func (l *LayoutArrangeCmd) Run(container *Container) error {
	result, err := container.WorkspaceService.ArrangeWithoutOverlap(context.Background(), l.Workspace, l.Padding)
	if err != nil {
		return err
	}
	printResults(result.Results)
	if len(result.Fallback) > 0 {
		fmt.Printf("\n%d documents kept their position because no free spot was found: %v\n", len(result.Fallback), result.Fallback)
	}
	return nil
}

// LayoutSnapCmd snaps positions to a grid
type LayoutSnapCmd struct {
	Grid      float64 `help:"Grid size in pixels (0 uses settings)" default:"0"`
	Workspace string  `arg:"" help:"Workspace name"`
}

// Run executes the snap command
func (l *LayoutSnapCmd) Run(container *Container) error {
	results, err := container.WorkspaceService.SnapToGrid(context.Background(), l.Workspace, l.Grid)
	if err != nil {
		return err
	}
	printResults(results)
	return nil
}

// LayoutValidateCmd reports documents outside the workspace
type LayoutValidateCmd struct {
	Workspace string `arg:"" help:"Workspace name"`
}

// Run executes the validate command
func (l *LayoutValidateCmd) Run(container *Container) error {
	report, err := container.WorkspaceService.Layout(context.Background(), l.Workspace)
	if err != nil {
		return err
	}
	if report.Report.IsValid {
		fmt.Println("Layout is valid")
		return nil
	}

	w := newTabWriter()
	fmt.Fprintln(w, "DOCUMENT\tISSUE\tDETAILS")
	for _, issue := range report.Report.Issues {
		fmt.Fprintf(w, "%s\t%s\t%s\n", issue.DocumentID, issue.Kind, issue.Message)
	}
	w.Flush()
	return fmt.Errorf("layout has %d issues", len(report.Report.Issues))
}

// LayoutSuggestCmd prints the suggested mode
type LayoutSuggestCmd struct {
	Workspace string `arg:"" help:"Workspace name"`
}

// Run executes the suggest command
func (l *LayoutSuggestCmd) Run(container *Container) error {
	report, err := container.WorkspaceService.Layout(context.Background(), l.Workspace)
	if err != nil {
		return err
	}
	current := report.Workspace.LayoutMode()
	if report.Suggestion == current {
		fmt.Printf("%s (current)\n", current)
		return nil
	}
	fmt.Printf("%s (current: %s)\n", report.Suggestion, current)
	return nil
}
