package cmd

import (
	"fmt"
	"os"

	"github.com/agent-platform/pdfcost/internal/config"
	"github.com/agent-platform/pdfcost/internal/ui"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	noColor bool
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "pdfcost [PDF_PATH]",
	Short: "Estimate the LLM processing cost of a PDF",
	Long: `pdfcost extracts the text of a PDF, counts its tokens with the exact
p50k_base encoding, and estimates what sending it through a language model
would cost, given prices per million input and output tokens.

If no PDF path is given, the first *.pdf in the current directory is used.

Examples:
  pdfcost report.pdf -i 1.50 -o 2.00 -n 5000
  pdfcost --model gpt-4o -n 2000      Use built-in pricing for a model
  pdfcost models                      List built-in model pricing
  pdfcost tokens report.pdf           Print the token count only`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEstimate,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			ui.SetColor(false)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.pdfcost/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	// Registered here rather than left to cobra so -v stays a shorthand.
	rootCmd.Flags().BoolP("version", "v", false, "show version and exit")
}

func loadConfig() (*config.Config, string, error) {
	path := cfgFile
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return nil, "", fmt.Errorf("determine config path: %w", err)
		}
	}

	// A missing config file is fine; flags can carry everything.
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, "", err
	}
	if cfg.NoColor {
		ui.SetColor(false)
	}

	return cfg, path, nil
}
