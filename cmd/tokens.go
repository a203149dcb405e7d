package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/agent-platform/pdfcost/internal/extract"
	"github.com/agent-platform/pdfcost/internal/tokenizer"
	"github.com/spf13/cobra"
)

var tokensJSON bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [PDF_PATH]",
	Short: "Count the input tokens of a PDF",
	Long: `Extracts the text of a PDF and prints its p50k_base token count, nothing
else. Handy for piping into other tooling.

Examples:
  pdfcost tokens report.pdf
  pdfcost tokens               # first *.pdf in the current directory
  pdfcost tokens --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolvePDFPath(args, true)
		if err != nil {
			return err
		}

		text, err := extract.Text(path)
		if err != nil {
			return err
		}

		counter, err := tokenizer.New()
		if err != nil {
			return err
		}
		n := counter.Count(text)

		if tokensJSON {
			enc := json.NewEncoder(os.Stdout)
			return enc.Encode(struct {
				Path   string `json:"path"`
				Tokens int    `json:"tokens"`
			}{Path: path, Tokens: n})
		}

		fmt.Println(n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "output as JSON")
}
