package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agent-platform/pdfcost/internal/config"
	"github.com/agent-platform/pdfcost/internal/extract"
	"github.com/agent-platform/pdfcost/internal/pricing"
	"github.com/agent-platform/pdfcost/internal/tokenizer"
	"github.com/agent-platform/pdfcost/internal/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	inputPrice     float64
	outputPrice    float64
	outputTokens   int
	estimateModel  string
	estimateFormat string
)

func init() {
	rootCmd.Flags().Float64VarP(&inputPrice, "input-price", "i", 0, "price per million input tokens in USD (e.g. 1.40)")
	rootCmd.Flags().Float64VarP(&outputPrice, "output-price", "o", 0, "price per million output tokens in USD (e.g. 2.00)")
	rootCmd.Flags().IntVarP(&outputTokens, "output-tokens", "n", 0, "estimated number of output tokens")
	rootCmd.Flags().StringVarP(&estimateModel, "model", "m", "", "model whose pricing to use (see 'pdfcost models')")
	rootCmd.Flags().StringVarP(&estimateFormat, "format", "f", "table", "output format: table, json")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	if estimateFormat != "table" && estimateFormat != "json" {
		return fmt.Errorf("unsupported format: %s (use table or json)", estimateFormat)
	}
	if outputTokens < 0 {
		return fmt.Errorf("--output-tokens must be non-negative, got %d", outputTokens)
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	prices, model, err := resolvePrices(cfg, priceFlags{
		input:     inputPrice,
		inputSet:  cmd.Flags().Changed("input-price"),
		output:    outputPrice,
		outputSet: cmd.Flags().Changed("output-price"),
		model:     estimateModel,
	})
	if err != nil {
		return err
	}

	// Keep stdout pure JSON when asked for it; the discovery notice is
	// chatter, not output.
	path, err := resolvePDFPath(args, estimateFormat == "json")
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

	est := pricing.Estimate(counter.Count(text), outputTokens, prices)

	if estimateFormat == "json" {
		return writeEstimateJSON(os.Stdout, path, model, prices, est)
	}
	renderEstimateTable(path, model, prices, est)
	return nil
}

// priceFlags carries the pricing-related flag state into resolvePrices so the
// precedence logic stays a pure function.
type priceFlags struct {
	input     float64
	inputSet  bool
	output    float64
	outputSet bool
	model     string
}

// resolvePrices builds the pricing config with flag > config file > catalog
// precedence. Returns the model name whose pricing was used, if any.
func resolvePrices(cfg *config.Config, f priceFlags) (pricing.Config, string, error) {
	model := f.model
	if model == "" {
		model = cfg.DefaultModel
	}

	var prices pricing.Config
	haveModel := false
	if model != "" {
		if mp, ok := cfg.Models[model]; ok {
			prices = pricing.Config{
				InputPerMillion:  mp.InputPerMillion,
				OutputPerMillion: mp.OutputPerMillion,
			}
			haveModel = true
		} else if p := pricing.Lookup(model); p != nil {
			prices = p.Config()
			haveModel = true
		} else {
			return pricing.Config{}, "", fmt.Errorf("unknown model %q (see 'pdfcost models')", model)
		}
	}

	if !haveModel {
		prices = pricing.Config{
			InputPerMillion:  cfg.InputPricePerMillion,
			OutputPerMillion: cfg.OutputPricePerMillion,
		}
	}
	if f.inputSet {
		prices.InputPerMillion = f.input
	}
	if f.outputSet {
		prices.OutputPerMillion = f.output
	}

	if prices.InputPerMillion < 0 || prices.OutputPerMillion < 0 {
		return pricing.Config{}, "", errors.New("prices must be non-negative")
	}
	if !f.inputSet && !haveModel && cfg.InputPricePerMillion == 0 {
		return pricing.Config{}, "", errors.New("input price required: pass --input-price or --model (or set defaults with 'pdfcost init')")
	}

	if !haveModel {
		model = ""
	}
	return prices, model, nil
}

// resolvePDFPath picks the PDF to process: the positional argument if given,
// otherwise the first *.pdf in the current directory.
func resolvePDFPath(args []string, quiet bool) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	path, err := extract.FindFirstPDF(".")
	if err != nil {
		if errors.Is(err, extract.ErrNoPDF) {
			return "", errors.New("no PDF path given and no PDF files found in the current directory")
		}
		return "", err
	}
	if !quiet {
		fmt.Printf("Using PDF file: %s\n", path)
	}
	return path, nil
}

func renderEstimateTable(path, model string, prices pricing.Config, est pricing.CostEstimate) {
	header := ui.Boldf("Cost Estimate") + ui.Dimf(" (%s)", filepath.Base(path))
	if model != "" {
		header += ui.Dimf(" — %s", model)
	}
	fmt.Println(header)
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetBorder(false)
	table.SetColumnSeparator("  ")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"Input Tokens", formatTokens(est.InputTokens)})
	table.Append([]string{"Output Tokens (estimated)", formatTokens(est.OutputTokens)})
	table.Append([]string{"Total Tokens", formatTokens(est.TotalTokens())})
	table.Append([]string{"Input Price / 1M", fmt.Sprintf("$%.2f", prices.InputPerMillion)})
	table.Append([]string{"Output Price / 1M", fmt.Sprintf("$%.2f", prices.OutputPerMillion)})
	table.Append([]string{"Input Cost", ui.CostColor(est.InputCost)})
	table.Append([]string{"Output Cost", ui.CostColor(est.OutputCost)})
	table.Append([]string{"Total Cost", ui.CostColor(est.TotalCost)})

	table.Render()
}

type estimateJSON struct {
	Path                  string  `json:"path"`
	Model                 string  `json:"model,omitempty"`
	InputPricePerMillion  float64 `json:"input_price_per_million"`
	OutputPricePerMillion float64 `json:"output_price_per_million"`
	pricing.CostEstimate
	TotalTokens int `json:"total_tokens"`
}

func writeEstimateJSON(out *os.File, path, model string, prices pricing.Config, est pricing.CostEstimate) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(estimateJSON{
		Path:                  path,
		Model:                 model,
		InputPricePerMillion:  prices.InputPerMillion,
		OutputPricePerMillion: prices.OutputPerMillion,
		CostEstimate:          est,
		TotalTokens:           est.TotalTokens(),
	})
}

// formatTokens shows the exact count, with a humanized hint for large counts.
func formatTokens(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%d %s", n, ui.Dimf("(%.1fM)", float64(n)/1_000_000))
	case n >= 1_000:
		return fmt.Sprintf("%d %s", n, ui.Dimf("(%.1fK)", float64(n)/1_000))
	default:
		return fmt.Sprintf("%d", n)
	}
}
