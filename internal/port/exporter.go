package port

import (
	"io"

	"doccov/internal/domain"
)

// Exporter renders a project report in one output format.
type Exporter interface {
	Export(w io.Writer, report domain.ProjectReport) error
}
