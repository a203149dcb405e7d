package doctor

import (
	"fmt"
	"io"
	"os"

	"github.com/agent-platform/pdfcost/internal/config"
	"github.com/agent-platform/pdfcost/internal/pricing"
	"github.com/agent-platform/pdfcost/internal/tokenizer"
	"github.com/agent-platform/pdfcost/internal/ui"
)

// Status represents the result of a health check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string
	Status  Status
	Message string
}

// Check is a single health check function.
type Check func(cfg *config.Config, configPath string) Result

// Run executes all checks and prints a diagnostic report. Returns the number
// of failed checks.
func Run(w io.Writer, cfg *config.Config, configPath string) int {
	checks := []Check{
		CheckConfigFile,
		CheckPriceSanity,
		CheckDefaultModel,
		CheckTokenizer,
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.Boldf("  pdfcost doctor"))
	fmt.Fprintln(w)

	var fails int
	for _, check := range checks {
		result := check(cfg, configPath)
		icon := statusIcon(result.Status)
		fmt.Fprintf(w, "  %s  %s\n", icon, result.Message)
		if result.Status == StatusFail {
			fails++
		}
	}

	fmt.Fprintln(w)
	if fails == 0 {
		fmt.Fprintln(w, ui.Greenf("  All checks passed!"))
	} else {
		fmt.Fprintln(w, ui.Redf("  %d check(s) failed", fails))
	}
	fmt.Fprintln(w)
	return fails
}

func statusIcon(s Status) string {
	switch s {
	case StatusPass:
		return ui.Greenf("PASS")
	case StatusWarn:
		return ui.Yellowf("WARN")
	case StatusFail:
		return ui.Redf("FAIL")
	default:
		return "????"
	}
}

// CheckConfigFile reports whether the config file exists and parses.
func CheckConfigFile(_ *config.Config, configPath string) Result {
	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return Result{Name: "config_file", Status: StatusPass,
				Message: fmt.Sprintf("Config file: none at %s (defaults apply, run 'pdfcost init' to create one)", configPath)}
		}
		return Result{Name: "config_file", Status: StatusFail,
			Message: fmt.Sprintf("Config file: cannot stat %s: %v", configPath, err)}
	}
	if _, err := config.Load(configPath); err != nil {
		return Result{Name: "config_file", Status: StatusFail,
			Message: fmt.Sprintf("Config file: %s does not parse: %v", configPath, err)}
	}
	return Result{Name: "config_file", Status: StatusPass,
		Message: fmt.Sprintf("Config file: %s OK", configPath)}
}

// CheckPriceSanity flags negative prices, which make every estimate nonsense.
func CheckPriceSanity(cfg *config.Config, _ string) Result {
	if cfg.InputPricePerMillion < 0 || cfg.OutputPricePerMillion < 0 {
		return Result{Name: "price_sanity", Status: StatusFail,
			Message: "Prices: negative fallback price configured"}
	}
	for name, p := range cfg.Models {
		if p.InputPerMillion < 0 || p.OutputPerMillion < 0 {
			return Result{Name: "price_sanity", Status: StatusFail,
				Message: fmt.Sprintf("Prices: model %q has a negative price override", name)}
		}
	}
	if cfg.InputPricePerMillion == 0 && cfg.DefaultModel == "" {
		return Result{Name: "price_sanity", Status: StatusWarn,
			Message: "Prices: no fallback input price and no default model; estimates need --input-price or --model"}
	}
	return Result{Name: "price_sanity", Status: StatusPass, Message: "Prices: OK"}
}

// CheckDefaultModel verifies the configured default model resolves to pricing.
func CheckDefaultModel(cfg *config.Config, _ string) Result {
	if cfg.DefaultModel == "" {
		return Result{Name: "default_model", Status: StatusPass,
			Message: "Default model: not set"}
	}
	if _, ok := cfg.Models[cfg.DefaultModel]; ok {
		return Result{Name: "default_model", Status: StatusPass,
			Message: fmt.Sprintf("Default model: %q priced by config override", cfg.DefaultModel)}
	}
	if pricing.Lookup(cfg.DefaultModel) == nil {
		return Result{Name: "default_model", Status: StatusFail,
			Message: fmt.Sprintf("Default model: %q not in catalog (see 'pdfcost models') and has no override", cfg.DefaultModel)}
	}
	return Result{Name: "default_model", Status: StatusPass,
		Message: fmt.Sprintf("Default model: %q priced by catalog", cfg.DefaultModel)}
}

// CheckTokenizer verifies the p50k_base vocabulary can be loaded. First run
// needs network access to fetch it; afterwards it comes from the local cache.
func CheckTokenizer(_ *config.Config, _ string) Result {
	counter, err := tokenizer.New()
	if err != nil {
		return Result{Name: "tokenizer", Status: StatusFail,
			Message: fmt.Sprintf("Tokenizer: %v", err)}
	}
	if n := counter.Count("hello world"); n != 2 {
		return Result{Name: "tokenizer", Status: StatusFail,
			Message: fmt.Sprintf("Tokenizer: %s self-test counted %d tokens for \"hello world\", want 2", tokenizer.Encoding, n)}
	}
	return Result{Name: "tokenizer", Status: StatusPass,
		Message: fmt.Sprintf("Tokenizer: %s vocabulary loaded", tokenizer.Encoding)}
}
