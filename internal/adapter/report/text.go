package report

import (
	"fmt"
	"io"

	"doccov/internal/domain"
)

// TextExporter renders a terminal-friendly coverage summary.
type TextExporter struct{}

func (e *TextExporter) Export(w io.Writer, project domain.ProjectReport) error {
	fmt.Fprintf(w, "Documentation coverage for %s\n\n", project.Root)
	fmt.Fprintf(w, "  Files analyzed:  %d\n", len(project.Files))
	fmt.Fprintf(w, "  Total units:     %d\n", project.Totals.Total)
	fmt.Fprintf(w, "  Documented:      %d\n", project.Totals.Documented)
	fmt.Fprintf(w, "  Undocumented:    %d\n", project.Totals.Undocumented)
	fmt.Fprintf(w, "  Coverage:        %.2f%%\n", project.Totals.Percent())
	fmt.Fprintf(w, "  Health:          %s\n", project.Totals.Health())

	if project.Totals.Undocumented == 0 {
		return nil
	}

	fmt.Fprintf(w, "\nUndocumented units:\n")
	for _, f := range project.Files {
		if len(f.Report.Flagged) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n  %s (%.2f%%)\n", f.Path, f.Report.Percent())
		for _, u := range f.Report.Flagged {
			fmt.Fprintf(w, "    %-10s %s (line %d)\n", u.Kind, u.QualifiedName, u.StartLine)
		}
	}

	return nil
}
