package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/renato0307/docdesk/internal/domain"
)

func newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func formatGeometry(p domain.Position, d domain.Dimensions) string {
	return fmt.Sprintf("%.0f,%.0f %.0fx%.0f", p.X(), p.Y(), d.Width(), d.Height())
}

func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

// printResults prints layout results as a table
func printResults(results []domain.DocumentLayoutResult) {
	w := newTabWriter()
	fmt.Fprintln(w, "ID\tGEOMETRY\tZ\tVISIBLE")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.ID, formatGeometry(r.Position, r.Dimensions), r.ZIndex, yesNo(r.IsVisible))
	}
	w.Flush()
}

// printDocuments prints the caddies of a workspace as a table
func printDocuments(ws *domain.Workspace) {
	w := newTabWriter()
	fmt.Fprintln(w, "ID\tTITLE\tSTATE\tACTIVE\tGEOMETRY\tZ\tPATH")
	for _, d := range ws.Documents() {
		state := d.State().Symbol() + " " + string(d.State())
		if msg := d.ErrorMessage(); msg != "" {
			state += ": " + msg
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			d.ID(), d.Title(), state, yesNo(d.IsActive()),
			formatGeometry(d.Position(), d.Dimensions()), d.ZIndex(), d.FilePath())
	}
	w.Flush()
}
