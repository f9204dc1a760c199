package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"doccov/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "doccov",
	Short: "doccov - Documentation coverage analyzer for source trees",
	Long: `doccov scans a source tree, finds functions, types, and files that
lack documentation, computes coverage statistics, and prepares draft
prompts for AI-assisted documentation.

Example usage:
  doccov analyze .            # Scan current directory
  doccov report -f markdown   # Render the last scan as Markdown
  doccov flagged              # List undocumented units
  doccov prompt               # Emit LLM draft prompts for them`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./doccov.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
