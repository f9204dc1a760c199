package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"doccov/config"
	"doccov/internal/adapter/docgen"
	"doccov/internal/adapter/fs"
	"doccov/internal/adapter/store"
	"doccov/internal/domain"
	"doccov/internal/usecase"
)

var (
	promptSkeleton bool
	promptJSON     bool
	promptStyle    string
	promptLimit    int
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Generate documentation draft prompts for flagged units",
	Long: `Generate LLM-ready prompts (or plain skeleton drafts) for every
undocumented unit found by the last scan. Prompts carry the unit's
qualified name, kind, position, signature, and source snippet; feed
them to the LLM of your choice.

Examples:
  doccov prompt                   # Prompts as text
  doccov prompt --json            # Prompts as a JSON request list
  doccov prompt --skeleton        # Baseline doc skeletons instead
  doccov prompt --skeleton --style numpy`,
	RunE: runPromptCmd,
}

func init() {
	rootCmd.AddCommand(promptCmd)
	promptCmd.Flags().BoolVar(&promptSkeleton, "skeleton", false, "emit baseline doc skeletons instead of LLM prompts")
	promptCmd.Flags().BoolVar(&promptJSON, "json", false, "emit prompts as a JSON request list")
	promptCmd.Flags().StringVar(&promptStyle, "style", "", "skeleton style: godoc, google, numpy, rest (default from config)")
	promptCmd.Flags().IntVar(&promptLimit, "limit", 0, "emit at most this many prompts (0 = all)")
}

func runPromptCmd(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
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
		fmt.Println("No undocumented units. Nothing to draft.")
		return nil
	}

	style := promptStyle
	if style == "" {
		style = cfg.Prompt.Style
	}

	if promptSkeleton {
		return emitSkeletons(flagged, style)
	}

	builder, err := docgen.NewPromptBuilder()
	if err != nil {
		return err
	}

	var requests []docgen.Request
	for _, f := range flagged {
		// Best effort: prompts still render without the source snippet.
		source, _ := fs.ReadFile(filepath.Join(root, filepath.FromSlash(f.Path)))

		reqs, err := builder.BuildRequests(f.Path, f.Report.Flagged, source, cfg.Prompt.MaxSnippetLines)
		if err != nil {
			return err
		}
		requests = append(requests, reqs...)
	}

	if promptLimit > 0 && len(requests) > promptLimit {
		requests = requests[:promptLimit]
	}

	if promptJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(requests)
	}

	for i, req := range requests {
		if i > 0 {
			fmt.Println("\n---")
		}
		fmt.Printf("# %s %s (%s:%d)\n\n", req.Kind, req.QualifiedName, req.File, req.StartLine)
		fmt.Println(req.Prompt)
	}
	return nil
}

func emitSkeletons(flagged []domain.FileReport, style string) error {
	count := 0
	for _, f := range flagged {
		for _, u := range f.Report.Flagged {
			if promptLimit > 0 && count >= promptLimit {
				return nil
			}
			fmt.Printf("# %s %s (%s:%d)\n", u.Kind, u.QualifiedName, f.Path, u.StartLine)
			fmt.Println(docgen.Skeleton(u, style))
			count++
		}
	}
	return nil
}
