package cmd

import (
	"os"

	"github.com/agent-platform/pdfcost/internal/doctor"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and dependencies",
	Long: `Runs a health check on your pdfcost setup:

  - Config file parses
  - Prices are sane (non-negative, something to estimate with)
  - Default model resolves to pricing
  - p50k_base vocabulary is loadable`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, cfgPath, err := loadConfig()
		if err != nil {
			return err
		}
		fails := doctor.Run(os.Stdout, cfg, cfgPath)
		if fails > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
