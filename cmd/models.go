package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/agent-platform/pdfcost/internal/pricing"
	"github.com/agent-platform/pdfcost/internal/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List known model pricing",
	Long: `Lists the built-in pricing catalog plus any per-model overrides from the
config file. Pass one of these names to --model instead of spelling out
prices by hand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Println(ui.Boldf("Model Pricing") + ui.Dimf(" (USD per 1M tokens)"))
		fmt.Println()

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Model", "Provider", "Input", "Output", "Source"})
		table.SetBorder(false)
		table.SetColumnAlignment([]int{
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_LEFT,
		})

		names := pricing.ListModels()
		for name := range cfg.Models {
			if pricing.Lookup(name) == nil {
				names = append(names, name)
			}
		}
		sort.Strings(names)

		for _, name := range names {
			if mp, ok := cfg.Models[name]; ok {
				table.Append([]string{
					ui.Cyanf("%s", name),
					"-",
					fmt.Sprintf("$%.2f", mp.InputPerMillion),
					fmt.Sprintf("$%.2f", mp.OutputPerMillion),
					ui.Yellowf("config"),
				})
				continue
			}
			p := pricing.Lookup(name)
			table.Append([]string{
				ui.Cyanf("%s", name),
				ui.Dimf("%s", p.Provider),
				fmt.Sprintf("$%.2f", p.InputPerMillion),
				fmt.Sprintf("$%.2f", p.OutputPerMillion),
				"catalog",
			})
		}

		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
