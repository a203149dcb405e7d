package pricing

import (
	"sort"
	"strings"
)

// ModelPricing holds the published per-million-token prices for a model.
type ModelPricing struct {
	Provider         string
	InputPerMillion  float64 // USD per 1M input tokens
	OutputPerMillion float64 // USD per 1M output tokens
}

// Config returns the model's prices as an estimate Config.
func (m ModelPricing) Config() Config {
	return Config{
		InputPerMillion:  m.InputPerMillion,
		OutputPerMillion: m.OutputPerMillion,
	}
}

// Built-in pricing catalog (USD per 1M tokens). Prices drift; a config file
// can override any entry without a rebuild.
var models = map[string]ModelPricing{
	// OpenAI — GPT-5 family
	"gpt-5.2":    {Provider: "openai", InputPerMillion: 1.75, OutputPerMillion: 14.00},
	"gpt-5.1":    {Provider: "openai", InputPerMillion: 1.25, OutputPerMillion: 10.00},
	"gpt-5":      {Provider: "openai", InputPerMillion: 1.25, OutputPerMillion: 10.00},
	"gpt-5-mini": {Provider: "openai", InputPerMillion: 0.25, OutputPerMillion: 2.00},
	"gpt-5-nano": {Provider: "openai", InputPerMillion: 0.05, OutputPerMillion: 0.40},
	// OpenAI — GPT-4 family
	"gpt-4.1":      {Provider: "openai", InputPerMillion: 2.00, OutputPerMillion: 8.00},
	"gpt-4.1-mini": {Provider: "openai", InputPerMillion: 0.40, OutputPerMillion: 1.60},
	"gpt-4.1-nano": {Provider: "openai", InputPerMillion: 0.10, OutputPerMillion: 0.40},
	"gpt-4o":       {Provider: "openai", InputPerMillion: 2.50, OutputPerMillion: 10.00},
	"gpt-4o-mini":  {Provider: "openai", InputPerMillion: 0.15, OutputPerMillion: 0.60},
	// OpenAI — reasoning models
	"o1":      {Provider: "openai", InputPerMillion: 15.00, OutputPerMillion: 60.00},
	"o3":      {Provider: "openai", InputPerMillion: 2.00, OutputPerMillion: 8.00},
	"o3-mini": {Provider: "openai", InputPerMillion: 1.10, OutputPerMillion: 4.40},
	"o4-mini": {Provider: "openai", InputPerMillion: 1.10, OutputPerMillion: 4.40},

	// Anthropic
	"claude-opus-4-6":            {Provider: "anthropic", InputPerMillion: 5.00, OutputPerMillion: 25.00},
	"claude-opus-4-5-20251101":   {Provider: "anthropic", InputPerMillion: 5.00, OutputPerMillion: 25.00},
	"claude-sonnet-4-5-20250929": {Provider: "anthropic", InputPerMillion: 3.00, OutputPerMillion: 15.00},
	"claude-sonnet-4-20250514":   {Provider: "anthropic", InputPerMillion: 3.00, OutputPerMillion: 15.00},
	"claude-haiku-4-5-20251001":  {Provider: "anthropic", InputPerMillion: 1.00, OutputPerMillion: 5.00},
	"claude-3-5-haiku-20241022":  {Provider: "anthropic", InputPerMillion: 0.80, OutputPerMillion: 4.00},

	// DeepSeek
	"deepseek-chat":     {Provider: "deepseek", InputPerMillion: 0.27, OutputPerMillion: 1.10},
	"deepseek-reasoner": {Provider: "deepseek", InputPerMillion: 0.55, OutputPerMillion: 2.19},
}

// Lookup returns the catalog pricing for a model, nil if unknown.
// Matching is case-insensitive; versioned names fall back to the longest
// catalog prefix so "gpt-4o-2024-08-06" resolves to "gpt-4o".
func Lookup(model string) *ModelPricing {
	model = strings.ToLower(model)
	if p, ok := models[model]; ok {
		return &p
	}

	var bestName string
	var best ModelPricing
	for name, p := range models {
		if strings.HasPrefix(model, name) && len(name) > len(bestName) {
			bestName = name
			best = p
		}
	}
	if bestName != "" {
		return &best
	}
	return nil
}

// ListModels returns all catalog model names in sorted order.
func ListModels() []string {
	result := make([]string, 0, len(models))
	for name := range models {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}
