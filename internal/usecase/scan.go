package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"doccov/internal/adapter/cache"
	"doccov/internal/adapter/fs"
	"doccov/internal/domain"
	"doccov/internal/port"
)

// ScanUseCase walks a source tree, extracts each file's outline, runs
// coverage analysis per file, and persists the results. File analyses
// are independent and run on a bounded worker pool; reports are merged
// by summation, so the merge order does not matter.
type ScanUseCase struct {
	store   port.ScanStore
	walker  port.FileWalker
	parser  port.OutlineParser
	cache   *cache.ReportCache
	workers int
}

// NewScanUseCase creates a new scan use case. The cache is optional;
// pass nil to analyze every file from scratch. workers <= 0 uses one
// worker per CPU.
func NewScanUseCase(
	store port.ScanStore,
	walker port.FileWalker,
	parser port.OutlineParser,
	reportCache *cache.ReportCache,
	workers int,
) *ScanUseCase {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &ScanUseCase{
		store:   store,
		walker:  walker,
		parser:  parser,
		cache:   reportCache,
		workers: workers,
	}
}

// ScanResult contains the results of one scan.
type ScanResult struct {
	FilesAnalyzed int
	FilesSkipped  int
	FilesDeleted  int
	Project       domain.ProjectReport
	Errors        []string
}

// ProgressFunc reports scan progress to the caller.
type ProgressFunc func(processed, total int, currentFile string)

type fileOutcome struct {
	relPath string
	meta    port.FileMeta
	outline []domain.Unit
	report  domain.Report
	skipped bool
	err     error
}

// Scan analyzes all matching files under root. Unchanged files (stored
// modtime at least as new as on disk) reuse their stored analysis;
// files that no longer exist are purged from the store. Files that fail
// to parse or violate outline invariants are recorded as warnings and
// left out of the aggregate.
func (u *ScanUseCase) Scan(root string, progress ProgressFunc) (*ScanResult, error) {
	result := &ScanResult{}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	existing, err := u.store.ListFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to list stored files: %w", err)
	}
	existingMap := make(map[string]port.FileMeta, len(existing))
	for _, meta := range existing {
		existingMap[meta.Path] = meta
	}

	seen := make(map[string]bool, len(files))
	for _, f := range files {
		seen[f.RelPath] = true
	}

	outcomes := u.analyzeAll(files, existingMap, progress)

	var fileReports []domain.FileReport
	for _, out := range outcomes {
		if out.err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", out.relPath, out.err))
			continue
		}

		if out.skipped {
			result.FilesSkipped++
		} else {
			result.FilesAnalyzed++
			if err := u.store.PutFile(out.meta); err != nil {
				return nil, fmt.Errorf("failed to store file meta: %w", err)
			}
			if err := u.store.PutAnalysis(out.relPath, out.outline, out.report); err != nil {
				return nil, fmt.Errorf("failed to store analysis: %w", err)
			}
		}

		fileReports = append(fileReports, domain.FileReport{
			Path:   out.relPath,
			Report: out.report,
		})
	}

	for path := range existingMap {
		if !seen[path] {
			if err := u.store.DeleteFile(path); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("failed to delete %s: %v", path, err))
			} else {
				result.FilesDeleted++
			}
		}
	}

	sort.Slice(fileReports, func(i, j int) bool {
		return fileReports[i].Path < fileReports[j].Path
	})

	result.Project = domain.ProjectReport{
		Root:        root,
		GeneratedAt: time.Now(),
		Files:       fileReports,
		Totals:      Merge(fileReports),
	}

	return result, nil
}

// analyzeAll fans files out to the worker pool and collects outcomes.
// Progress is reported from the collecting side only.
func (u *ScanUseCase) analyzeAll(files []port.FileInfo, existing map[string]port.FileMeta, progress ProgressFunc) []fileOutcome {
	jobs := make(chan port.FileInfo)
	results := make(chan fileOutcome)

	var wg sync.WaitGroup
	for i := 0; i < u.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range jobs {
				results <- u.analyzeFile(f, existing)
			}
		}()
	}

	go func() {
		for _, f := range files {
			jobs <- f
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	outcomes := make([]fileOutcome, 0, len(files))
	processed := 0
	for out := range results {
		outcomes = append(outcomes, out)
		processed++
		if progress != nil {
			progress(processed, len(files), out.relPath)
		}
	}

	// Restore source-tree order; worker completion order is arbitrary.
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].relPath < outcomes[j].relPath
	})

	return outcomes
}

// analyzeFile analyzes a single file, reusing the stored analysis for
// unchanged files and the session cache for identical content.
func (u *ScanUseCase) analyzeFile(f port.FileInfo, existing map[string]port.FileMeta) fileOutcome {
	out := fileOutcome{relPath: f.RelPath}

	if prior, ok := existing[f.RelPath]; ok && prior.ModTime >= f.ModTime {
		_, report, err := u.store.GetAnalysis(f.RelPath)
		if err == nil {
			out.report = report
			out.skipped = true
			return out
		}
		// Stored meta without analysis; fall through and re-analyze.
	}

	content, err := fs.ReadFile(f.Path)
	if err != nil {
		out.err = fmt.Errorf("failed to read file: %w", err)
		return out
	}

	hash := contentHash(content)
	out.meta = port.FileMeta{
		Path:    f.RelPath,
		ModTime: f.ModTime,
		Hash:    hash,
	}

	if u.cache != nil {
		if outline, report, ok := u.cache.Get(hash); ok {
			out.outline = outline
			out.report = report
			return out
		}
	}

	outline, err := u.parser.Parse(f.RelPath, content)
	if err != nil {
		out.err = fmt.Errorf("failed to parse: %w", err)
		return out
	}

	report, err := Analyze(outline)
	if err != nil {
		out.err = err
		return out
	}

	if u.cache != nil {
		u.cache.Put(hash, outline, report)
	}

	out.outline = outline
	out.report = report
	return out
}

func contentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:16])
}
