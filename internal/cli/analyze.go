package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"doccov/config"
	"doccov/internal/adapter/cache"
	"doccov/internal/adapter/fs"
	"doccov/internal/adapter/parser"
	"doccov/internal/adapter/report"
	"doccov/internal/adapter/store"
	"doccov/internal/domain"
	"doccov/internal/usecase"
)

var (
	analyzeRebuild bool
	analyzeOutline string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Scan a source tree and compute documentation coverage",
	Long: `Scan the given directory, extract an outline per source file, and
compute per-file and aggregate documentation coverage. Results are
stored in .doccov/scan.db within the target directory; unchanged files
are skipped on subsequent runs.

With --outline, a pre-extracted outline (JSON) is analyzed instead of
scanning sources, and nothing is stored.

Examples:
  doccov analyze .                  # Scan current directory
  doccov analyze /path/to/project   # Scan specific directory
  doccov analyze --outline out.json # Analyze an external outline`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeRebuild, "rebuild", false, "discard stored results and re-analyze everything")
	analyzeCmd.Flags().StringVar(&analyzeOutline, "outline", "", "analyze an externally produced outline (JSON) instead of scanning")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeOutline != "" {
		return analyzeOutlineFile(analyzeOutline)
	}

	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()

	if err := config.EnsureDoccovDir(path); err != nil {
		return fmt.Errorf("failed to create .doccov directory: %w", err)
	}

	dbPath := config.ScanDBPath(path)
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open scan store: %w", err)
	}
	defer st.Close()

	needsRebuild, err := st.NeedsRebuild()
	if err != nil {
		return fmt.Errorf("failed to check scan store: %w", err)
	}
	if needsRebuild || analyzeRebuild {
		if needsRebuild {
			fmt.Println("Scan store schema changed, rebuilding...")
		}
		if err := st.Clear(); err != nil {
			return fmt.Errorf("failed to clear scan store: %w", err)
		}
	}

	walker := fs.NewWalker(cfg.Scan.Includes, cfg.EffectiveExcludes())
	goParser := parser.NewGoParser()

	var reportCache *cache.ReportCache
	if cfg.Cache.Enabled {
		ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute
		reportCache = cache.NewReportCache(cfg.Cache.MaxEntries, ttl)
	}

	scanUC := usecase.NewScanUseCase(st, walker, goParser, reportCache, cfg.Scan.Workers)

	fmt.Printf("Scanning %s...\n", path)

	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time
	var initialized bool

	progress := func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if !initialized {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Analyzing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
			initialized = true
		}

		bar.Set(processed)

		if processed > 0 {
			elapsed := time.Since(startTime)
			rate := float64(processed) / elapsed.Seconds()
			remaining := total - processed
			if rate > 0 {
				eta := time.Duration(float64(remaining)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]Analyzing[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}

	result, err := scanUC.Scan(path, progress)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if err := st.SetLastScan(time.Now()); err != nil {
		return fmt.Errorf("failed to record scan time: %w", err)
	}

	fmt.Printf("\nScan complete:\n")
	fmt.Printf("  Files analyzed: %d\n", result.FilesAnalyzed)
	fmt.Printf("  Files skipped:  %d (unchanged)\n", result.FilesSkipped)
	fmt.Printf("  Files deleted:  %d (removed)\n", result.FilesDeleted)
	fmt.Printf("  Total units:    %d\n", result.Project.Totals.Total)
	fmt.Printf("  Documented:     %d\n", result.Project.Totals.Documented)
	fmt.Printf("  Undocumented:   %d\n", result.Project.Totals.Undocumented)
	fmt.Printf("  Coverage:       %.2f%%\n", result.Project.Totals.Percent())

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	fmt.Printf("\nScan stored at: %s\n", dbPath)
	return nil
}

// analyzeOutlineFile analyzes a single externally produced outline and
// prints its report without touching the store.
func analyzeOutlineFile(path string) error {
	outline, err := parser.LoadOutline(path)
	if err != nil {
		return err
	}

	rep, err := usecase.Analyze(outline.Units)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	project := domain.ProjectReport{
		Root:        outline.Path,
		GeneratedAt: time.Now(),
		Files: []domain.FileReport{
			{Path: outline.Path, Report: rep},
		},
		Totals: rep,
	}

	exporter, err := report.New(GetConfig().Report.Format)
	if err != nil {
		return err
	}
	return exporter.Export(os.Stdout, project)
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
