package doctor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agent-platform/pdfcost/internal/config"
)

func TestCheckConfigFile(t *testing.T) {
	t.Run("missing file passes with hint", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		r := CheckConfigFile(nil, path)
		if r.Status != StatusPass {
			t.Errorf("status = %v, want StatusPass", r.Status)
		}
		if !strings.Contains(r.Message, "pdfcost init") {
			t.Errorf("message %q missing init hint", r.Message)
		}
	})

	t.Run("valid file passes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		cfg := config.DefaultConfig()
		if err := config.Save(path, &cfg); err != nil {
			t.Fatal(err)
		}
		if r := CheckConfigFile(nil, path); r.Status != StatusPass {
			t.Errorf("status = %v (%s), want StatusPass", r.Status, r.Message)
		}
	})

	t.Run("broken file fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(":\n:"), 0o600); err != nil {
			t.Fatal(err)
		}
		if r := CheckConfigFile(nil, path); r.Status != StatusFail {
			t.Errorf("status = %v, want StatusFail", r.Status)
		}
	})
}

func TestCheckPriceSanity(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want Status
	}{
		{
			name: "positive fallback prices pass",
			cfg:  config.Config{InputPricePerMillion: 1.25, OutputPricePerMillion: 10},
			want: StatusPass,
		},
		{
			name: "negative fallback price fails",
			cfg:  config.Config{InputPricePerMillion: -1},
			want: StatusFail,
		},
		{
			name: "negative model override fails",
			cfg: config.Config{
				InputPricePerMillion: 1,
				Models:               map[string]config.ModelPrice{"x": {OutputPerMillion: -2}},
			},
			want: StatusFail,
		},
		{
			name: "no prices and no model warns",
			cfg:  config.Config{},
			want: StatusWarn,
		},
		{
			name: "default model alone passes",
			cfg:  config.Config{DefaultModel: "gpt-4o"},
			want: StatusPass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if r := CheckPriceSanity(&tt.cfg, ""); r.Status != tt.want {
				t.Errorf("status = %v (%s), want %v", r.Status, r.Message, tt.want)
			}
		})
	}
}

func TestCheckDefaultModel(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want Status
	}{
		{name: "unset passes", cfg: config.Config{}, want: StatusPass},
		{name: "catalog model passes", cfg: config.Config{DefaultModel: "gpt-4o"}, want: StatusPass},
		{
			name: "override-only model passes",
			cfg: config.Config{
				DefaultModel: "my-finetune",
				Models:       map[string]config.ModelPrice{"my-finetune": {InputPerMillion: 1}},
			},
			want: StatusPass,
		},
		{name: "unknown model fails", cfg: config.Config{DefaultModel: "llama-3-70b"}, want: StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if r := CheckDefaultModel(&tt.cfg, ""); r.Status != tt.want {
				t.Errorf("status = %v (%s), want %v", r.Status, r.Message, tt.want)
			}
		})
	}
}
