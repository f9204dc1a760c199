package report

import (
	"fmt"

	"doccov/internal/port"
)

// Formats supported by New.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
	FormatHTML     = "html"
)

// New returns the exporter for the given format name.
func New(format string) (port.Exporter, error) {
	switch format {
	case FormatText, "":
		return &TextExporter{}, nil
	case FormatJSON:
		return &JSONExporter{}, nil
	case FormatYAML:
		return &YAMLExporter{}, nil
	case FormatMarkdown, "md":
		return &MarkdownExporter{}, nil
	case FormatCSV:
		return &CSVExporter{}, nil
	case FormatHTML:
		return &HTMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}
