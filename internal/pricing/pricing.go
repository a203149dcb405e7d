package pricing

// Config holds the per-million-token prices for one estimate. Built once
// from CLI and config input, then read-only.
type Config struct {
	InputPerMillion  float64 // USD per 1M input tokens
	OutputPerMillion float64 // USD per 1M output tokens
}

// CostEstimate is the cost breakdown for a single document.
//
// Input tokens are counted from the document's extracted text. Output tokens
// are a caller-supplied guess for the generated side; nothing here derives
// them from the document.
type CostEstimate struct {
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	InputCost    float64 `json:"input_cost"`
	OutputCost   float64 `json:"output_cost"`
	TotalCost    float64 `json:"total_cost"`
}

const tokensPerMillion = 1_000_000

// Estimate computes the cost breakdown for the given token counts and prices.
func Estimate(inputTokens, outputTokens int, cfg Config) CostEstimate {
	inputCost := float64(inputTokens) / tokensPerMillion * cfg.InputPerMillion
	outputCost := float64(outputTokens) / tokensPerMillion * cfg.OutputPerMillion

	return CostEstimate{
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		InputCost:    inputCost,
		OutputCost:   outputCost,
		TotalCost:    inputCost + outputCost,
	}
}

// TotalTokens returns input plus output tokens.
func (e CostEstimate) TotalTokens() int {
	return e.InputTokens + e.OutputTokens
}
