package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"doccov/config"
	"doccov/internal/adapter/store"
	"doccov/internal/usecase"
)

var flaggedCmd = &cobra.Command{
	Use:   "flagged",
	Short: "List undocumented units from the last scan",
	RunE:  runFlagged,
}

func init() {
	rootCmd.AddCommand(flaggedCmd)
}

func runFlagged(cmd *cobra.Command, args []string) error {
	root := GetRootDir()

	st, err := store.NewBoltStore(config.ScanDBPath(root))
	if err != nil {
		return fmt.Errorf("failed to open scan store (run 'doccov analyze' first): %w", err)
	}
	defer st.Close()

	flagged, err := usecase.NewReportUseCase(st).Flagged(root)
	if err != nil {
		return err
	}

	if len(flagged) == 0 {
		fmt.Println("No undocumented units. Everything is covered.")
		return nil
	}

	count := 0
	for _, f := range flagged {
		fmt.Printf("%s\n", f.Path)
		for _, u := range f.Report.Flagged {
			fmt.Printf("  %-10s %s (line %d, %d lines)\n", u.Kind, u.QualifiedName, u.StartLine, u.LOC())
			count++
		}
	}
	fmt.Printf("\n%d undocumented unit(s) across %d file(s)\n", count, len(flagged))
	return nil
}
