package usecase

import (
	"fmt"

	"doccov/internal/domain"
)

// Analyze computes the coverage report for one file's outline.
//
// The outline is validated before any counting: qualified names must be
// unique, every non-empty parent reference must name a unit present in
// the sequence, and every kind must be a known variant. A violation
// fails the whole analysis with *domain.MalformedInputError; there are
// no partial results.
//
// Analyze is a pure function of its input. The flagged list preserves
// the source appearance order of the outline.
func Analyze(outline []domain.Unit) (domain.Report, error) {
	if err := validateOutline(outline); err != nil {
		return domain.Report{}, err
	}

	report := domain.Report{Ratio: 1.0}
	for _, u := range outline {
		report.Total++
		if u.Documented() {
			report.Documented++
		} else {
			report.Undocumented++
			report.Flagged = append(report.Flagged, u)
		}
	}

	// An empty outline is vacuously fully documented.
	if report.Total > 0 {
		report.Ratio = float64(report.Documented) / float64(report.Total)
	}

	return report, nil
}

func validateOutline(outline []domain.Unit) error {
	names := make(map[string]struct{}, len(outline))
	for _, u := range outline {
		if u.QualifiedName == "" {
			return &domain.MalformedInputError{Reason: "unit with empty qualified name"}
		}
		if !u.Kind.Valid() {
			return &domain.MalformedInputError{
				Reason: fmt.Sprintf("unit %s has unknown kind %q", u.QualifiedName, u.Kind),
			}
		}
		if _, seen := names[u.QualifiedName]; seen {
			return &domain.MalformedInputError{
				Reason: fmt.Sprintf("duplicate qualified name %s", u.QualifiedName),
			}
		}
		names[u.QualifiedName] = struct{}{}
	}

	for _, u := range outline {
		if u.Parent == "" {
			continue
		}
		if _, ok := names[u.Parent]; !ok {
			return &domain.MalformedInputError{
				Reason: fmt.Sprintf("unit %s references missing parent %s", u.QualifiedName, u.Parent),
			}
		}
	}

	return nil
}

// Merge combines per-file reports into one aggregate. Counts sum and
// the ratio is recomputed from the merged counts, so the result is the
// same under any merge order. Flagged units are not carried into the
// aggregate; they stay with their file reports.
func Merge(files []domain.FileReport) domain.Report {
	merged := domain.Report{Ratio: 1.0}
	for _, f := range files {
		merged.Total += f.Report.Total
		merged.Documented += f.Report.Documented
		merged.Undocumented += f.Report.Undocumented
	}
	if merged.Total > 0 {
		merged.Ratio = float64(merged.Documented) / float64(merged.Total)
	}
	return merged
}
