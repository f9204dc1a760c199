package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"doccov/internal/domain"
)

// CSVExporter writes one row per flagged unit.
type CSVExporter struct{}

func (e *CSVExporter) Export(w io.Writer, project domain.ProjectReport) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"file", "qualified_name", "kind", "start_line", "end_line", "loc", "size_rating", "signature"}); err != nil {
		return err
	}

	for _, f := range project.Files {
		for _, u := range f.Report.Flagged {
			row := []string{
				f.Path,
				u.QualifiedName,
				string(u.Kind),
				strconv.Itoa(u.StartLine),
				strconv.Itoa(u.EndLine),
				strconv.Itoa(u.LOC()),
				string(u.SizeRating()),
				u.Signature,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
