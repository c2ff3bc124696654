package completion

import (
	"context"
	"fmt"
	"os"

	"github.com/ethanbaker/relay/pkg/transcript"
	"gopkg.in/yaml.v3"
)

// Completer generates a single assistant reply for a conversation
type Completer interface {
	Complete(ctx context.Context, turns []transcript.Turn) (string, error)
}

// Params holds the generation parameters sent with every completion request.
// They are fixed per deployment, not per request
type Params struct {
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int64   `yaml:"max_tokens"`
	TopP        float64 `yaml:"top_p"`
}

// DefaultParams returns the stock deployment parameters
func DefaultParams() Params {
	return Params{
		Model:       "openchat/openchat-7b:free",
		Temperature: 0.7,
		MaxTokens:   500,
		TopP:        0.9,
	}
}

// LoadParams reads generation parameters from a YAML file. Fields absent
// from the file keep their default values
func LoadParams(path string) (Params, error) {
	params := DefaultParams()

	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("failed to read params file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &params); err != nil {
		return params, fmt.Errorf("failed to parse params file %s: %w", path, err)
	}

	return params, nil
}

// LoadParamsWithFallback reads generation parameters from a YAML file,
// returning the defaults if the file cannot be loaded
func LoadParamsWithFallback(path string) Params {
	if params, err := LoadParams(path); err == nil {
		return params
	}
	return DefaultParams()
}
