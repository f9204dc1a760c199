package report

import (
	"embed"
	"html/template"
	"io"

	"doccov/internal/domain"
)

//go:embed templates/*.html.tmpl
var htmlTemplates embed.FS

// HTMLExporter renders a self-contained HTML page from an embedded
// template. All unit fields pass through html/template escaping.
type HTMLExporter struct{}

func (e *HTMLExporter) Export(w io.Writer, project domain.ProjectReport) error {
	tmpl, err := template.ParseFS(htmlTemplates, "templates/*.html.tmpl")
	if err != nil {
		return err
	}
	return tmpl.ExecuteTemplate(w, "report.html.tmpl", project)
}
