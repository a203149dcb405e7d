package pricing

import (
	"math"
	"testing"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name         string
		inputTokens  int
		outputTokens int
		cfg          Config
		wantInput    float64
		wantOutput   float64
		wantTotal    float64
	}{
		{
			name:         "reference vector 10 and 30 per million",
			inputTokens:  1000,
			outputTokens: 500,
			cfg:          Config{InputPerMillion: 10, OutputPerMillion: 30},
			wantInput:    0.01,
			wantOutput:   0.015,
			wantTotal:    0.025,
		},
		{
			name:         "zero tokens zero cost",
			inputTokens:  0,
			outputTokens: 0,
			cfg:          Config{InputPerMillion: 10, OutputPerMillion: 30},
		},
		{
			name:         "zero prices zero cost",
			inputTokens:  123456,
			outputTokens: 7890,
			cfg:          Config{},
		},
		{
			name:         "exactly one million input tokens",
			inputTokens:  1_000_000,
			outputTokens: 0,
			cfg:          Config{InputPerMillion: 1.25, OutputPerMillion: 10},
			wantInput:    1.25,
			wantTotal:    1.25,
		},
		{
			name:         "small cost keeps precision",
			inputTokens:  1,
			outputTokens: 1,
			cfg:          Config{InputPerMillion: 0.05, OutputPerMillion: 0.40},
			wantInput:    0.00000005,
			wantOutput:   0.0000004,
			wantTotal:    0.00000045,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(tt.inputTokens, tt.outputTokens, tt.cfg)

			if got.InputTokens != tt.inputTokens || got.OutputTokens != tt.outputTokens {
				t.Errorf("Estimate() tokens = (%d, %d), want (%d, %d)",
					got.InputTokens, got.OutputTokens, tt.inputTokens, tt.outputTokens)
			}
			if !closeEnough(got.InputCost, tt.wantInput) {
				t.Errorf("InputCost = %v, want %v", got.InputCost, tt.wantInput)
			}
			if !closeEnough(got.OutputCost, tt.wantOutput) {
				t.Errorf("OutputCost = %v, want %v", got.OutputCost, tt.wantOutput)
			}
			if !closeEnough(got.TotalCost, tt.wantTotal) {
				t.Errorf("TotalCost = %v, want %v", got.TotalCost, tt.wantTotal)
			}
			// Total is defined as the exact float sum, not a reformulation.
			if got.TotalCost != got.InputCost+got.OutputCost {
				t.Errorf("TotalCost = %v, want InputCost+OutputCost = %v",
					got.TotalCost, got.InputCost+got.OutputCost)
			}
		})
	}
}

func TestEstimateScaling(t *testing.T) {
	base := Estimate(1000, 500, Config{InputPerMillion: 10, OutputPerMillion: 30})

	doubledTokens := Estimate(1000, 1000, Config{InputPerMillion: 10, OutputPerMillion: 30})
	if !closeEnough(doubledTokens.OutputCost, 2*base.OutputCost) {
		t.Errorf("doubling output tokens: OutputCost = %v, want %v",
			doubledTokens.OutputCost, 2*base.OutputCost)
	}

	doubledPrice := Estimate(1000, 500, Config{InputPerMillion: 10, OutputPerMillion: 60})
	if !closeEnough(doubledPrice.OutputCost, 2*base.OutputCost) {
		t.Errorf("doubling output price: OutputCost = %v, want %v",
			doubledPrice.OutputCost, 2*base.OutputCost)
	}
}

func TestTotalTokens(t *testing.T) {
	e := Estimate(1000, 500, Config{})
	if got := e.TotalTokens(); got != 1500 {
		t.Errorf("TotalTokens() = %d, want 1500", got)
	}
}

func closeEnough(got, want float64) bool {
	return math.Abs(got-want) < 1e-12
}
