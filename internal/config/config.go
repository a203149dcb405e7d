package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration. Everything here is a default
// that command-line flags override.
type Config struct {
	// Fallback prices used when no flag and no model pricing applies.
	InputPricePerMillion  float64 `yaml:"input_price_per_million"`
	OutputPricePerMillion float64 `yaml:"output_price_per_million"`

	// DefaultModel fills prices from the pricing catalog when set.
	DefaultModel string `yaml:"default_model"`

	// Models overrides or extends the built-in pricing catalog.
	Models map[string]ModelPrice `yaml:"models"`

	NoColor bool `yaml:"no_color"`
}

// ModelPrice is a per-model pricing override.
type ModelPrice struct {
	InputPerMillion  float64 `yaml:"input_per_million"`
	OutputPerMillion float64 `yaml:"output_per_million"`
}

// DefaultConfigDir returns the default configuration directory (~/.pdfcost).
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".pdfcost"), nil
}

// DefaultConfigPath returns the path to the default config file.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Models: map[string]ModelPrice{},
	}
}

// Load reads a config file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault reads the config at path, falling back to defaults when the
// file does not exist. A present-but-unparseable file is still an error.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		// Load wraps the underlying *PathError, so unwrap the chain.
		if errors.Is(err, fs.ErrNotExist) {
			def := DefaultConfig()
			return &def, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to disk, creating directories as needed.
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// SaveWithComments writes the config to disk with helpful comments for empty
// sections. Used by `init` to generate a self-documenting config file.
func SaveWithComments(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	data = addConfigComments(data)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// addConfigComments inserts # comments into marshaled YAML for user guidance.
// Only annotates empty default sections; user-populated sections are left alone.
func addConfigComments(data []byte) []byte {
	var result []string
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		indent := line[:len(line)-len(trimmed)]

		switch {
		case trimmed == "input_price_per_million: 0":
			result = append(result,
				indent+"# Fallback prices in USD per 1M tokens, used when no",
				indent+"# --input-price/--output-price flag and no model applies:",
				line,
			)

		case trimmed == "default_model: \"\"":
			result = append(result,
				indent+"# Model whose catalog pricing is used when no flags are given",
				indent+"# (see 'pdfcost models' for known names):",
				indent+"#   default_model: gpt-4o",
				line,
			)

		case trimmed == "models: {}":
			result = append(result,
				indent+"# Per-model pricing overrides (USD per 1M tokens). These win",
				indent+"# over the built-in catalog:",
				indent+"#   models:",
				indent+"#     gpt-4o:",
				indent+"#       input_per_million: 2.50",
				indent+"#       output_per_million: 10.00",
				line,
			)

		default:
			result = append(result, line)
		}
	}
	return []byte(strings.Join(result, "\n"))
}
