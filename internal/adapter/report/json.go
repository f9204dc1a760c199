package report

import (
	"encoding/json"
	"io"

	"doccov/internal/domain"
)

// JSONExporter writes the project report as indented JSON.
type JSONExporter struct{}

func (e *JSONExporter) Export(w io.Writer, project domain.ProjectReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(project)
}
