package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"doccov/internal/domain"
)

// YAMLExporter writes the project report as YAML.
type YAMLExporter struct{}

func (e *YAMLExporter) Export(w io.Writer, project domain.ProjectReport) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(project)
}
