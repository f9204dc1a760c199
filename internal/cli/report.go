package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"doccov/config"
	"doccov/internal/adapter/report"
	"doccov/internal/adapter/store"
	"doccov/internal/usecase"
)

var (
	reportFormat string
	reportOutput string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the last scan as a coverage report",
	Long: `Render the results of the last scan in the chosen format.

Formats: text, json, yaml, markdown, csv, html.

Examples:
  doccov report                      # Text summary to stdout
  doccov report -f markdown -o doc.md
  doccov report -f json | jq .totals`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "output format (default from config)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "output file (default stdout)")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	root := GetRootDir()

	st, err := store.NewBoltStore(config.ScanDBPath(root))
	if err != nil {
		return fmt.Errorf("failed to open scan store (run 'doccov analyze' first): %w", err)
	}
	defer st.Close()

	project, err := usecase.NewReportUseCase(st).Load(root)
	if err != nil {
		return err
	}
	if lastScan, ok, err := st.LastScan(); err == nil && ok {
		project.GeneratedAt = lastScan
	}

	format := reportFormat
	if format == "" {
		format = cfg.Report.Format
	}
	exporter, err := report.New(format)
	if err != nil {
		return err
	}

	output := reportOutput
	if output == "" {
		output = cfg.Report.Output
	}

	if output == "" {
		return exporter.Export(os.Stdout, project)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := exporter.Export(f, project); err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", output)
	return nil
}
