package report

import (
	"fmt"
	"io"

	"doccov/internal/domain"
)

// MarkdownExporter renders the project report as a Markdown document.
type MarkdownExporter struct{}

func (e *MarkdownExporter) Export(w io.Writer, project domain.ProjectReport) error {
	fmt.Fprintf(w, "# Documentation Coverage Report\n\n")
	fmt.Fprintf(w, "Root: `%s`  \n", project.Root)
	fmt.Fprintf(w, "Generated: %s\n\n", project.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(w, "## Summary\n\n")
	fmt.Fprintf(w, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(w, "| Files | %d |\n", len(project.Files))
	fmt.Fprintf(w, "| Total units | %d |\n", project.Totals.Total)
	fmt.Fprintf(w, "| Documented | %d |\n", project.Totals.Documented)
	fmt.Fprintf(w, "| Undocumented | %d |\n", project.Totals.Undocumented)
	fmt.Fprintf(w, "| Coverage | %.2f%% |\n", project.Totals.Percent())
	fmt.Fprintf(w, "| Health | %s |\n\n", project.Totals.Health())

	fmt.Fprintf(w, "## Files\n\n")
	fmt.Fprintf(w, "| File | Units | Documented | Coverage |\n|---|---|---|---|\n")
	for _, f := range project.Files {
		fmt.Fprintf(w, "| %s | %d | %d | %.2f%% |\n",
			f.Path, f.Report.Total, f.Report.Documented, f.Report.Percent())
	}

	if project.Totals.Undocumented > 0 {
		fmt.Fprintf(w, "\n## Undocumented\n\n")
		fmt.Fprintf(w, "| File | Unit | Kind | Line | Size |\n|---|---|---|---|---|\n")
		for _, f := range project.Files {
			for _, u := range f.Report.Flagged {
				fmt.Fprintf(w, "| %s | `%s` | %s | %d | %s |\n",
					f.Path, u.QualifiedName, u.Kind, u.StartLine, u.SizeRating())
			}
		}
	}

	return nil
}
