package usecase

import (
	"fmt"
	"sort"
	"time"

	"doccov/internal/domain"
	"doccov/internal/port"
)

// ReportUseCase reconstructs a project report from the scan store,
// without re-parsing any source.
type ReportUseCase struct {
	store port.ScanStore
}

func NewReportUseCase(store port.ScanStore) *ReportUseCase {
	return &ReportUseCase{store: store}
}

// Load builds the project report from the last stored scan. Files are
// ordered by path so output is deterministic.
func (u *ReportUseCase) Load(root string) (domain.ProjectReport, error) {
	files, err := u.store.ListFiles()
	if err != nil {
		return domain.ProjectReport{}, fmt.Errorf("failed to list stored files: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	var fileReports []domain.FileReport
	for _, meta := range files {
		_, report, err := u.store.GetAnalysis(meta.Path)
		if err != nil {
			return domain.ProjectReport{}, fmt.Errorf("failed to load analysis for %s: %w", meta.Path, err)
		}
		fileReports = append(fileReports, domain.FileReport{
			Path:   meta.Path,
			Report: report,
		})
	}

	return domain.ProjectReport{
		Root:        root,
		GeneratedAt: time.Now(),
		Files:       fileReports,
		Totals:      Merge(fileReports),
	}, nil
}

// Flagged returns all undocumented units from the last stored scan,
// grouped per file in path order, units in source order.
func (u *ReportUseCase) Flagged(root string) ([]domain.FileReport, error) {
	project, err := u.Load(root)
	if err != nil {
		return nil, err
	}

	var flagged []domain.FileReport
	for _, f := range project.Files {
		if len(f.Report.Flagged) == 0 {
			continue
		}
		flagged = append(flagged, f)
	}
	return flagged, nil
}
