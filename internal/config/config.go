// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/compat-scorer/internal/schemas"
	"github.com/jonathan/compat-scorer/internal/scoring"
)

// Config is the engine configuration that can be loaded from a JSON file.
// All sections are optional; a missing section falls back to the product
// defaults.
type Config struct {
	Weights    *scoring.CategoryWeights `json:"weights,omitempty"`
	Thresholds *scoring.ScoreThresholds `json:"thresholds,omitempty"`
	Bonus      *BonusConfig             `json:"bonus,omitempty"`
}

// BonusConfig carries the requirement-bonus tuning knobs.
type BonusConfig struct {
	CriticalMatchPoints  float64 `json:"critical_match_points" validate:"gte=0"`
	PreferredMatchPoints float64 `json:"preferred_match_points" validate:"gte=0"`
	CriticalMissPenalty  float64 `json:"critical_miss_penalty" validate:"gte=0"`
}

// LoadConfig loads configuration from a JSON file, validating it against
// the embedded engine-config schema before unmarshaling. Returns an error
// if the file cannot be read, fails schema validation, or carries invalid
// values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := schemas.ValidateEngineConfig(data); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configured sections. Weight and threshold invariants
// (ceilings summing to 100, strictly descending bands) are enforced here so
// a bad config file fails at load time, not per request.
func (c *Config) Validate() error {
	if c.Weights != nil {
		if err := c.Weights.Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	if c.Thresholds != nil {
		if err := c.Thresholds.Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	if c.Bonus != nil {
		if err := validator.New().Struct(c.Bonus); err != nil {
			return fmt.Errorf("config error: invalid bonus policy: %w", err)
		}
	}
	return nil
}

// EngineWeights returns the configured weights, or the defaults when the
// section is absent.
func (c *Config) EngineWeights() scoring.CategoryWeights {
	if c != nil && c.Weights != nil {
		return *c.Weights
	}
	return scoring.DefaultWeights()
}

// EngineThresholds returns the configured thresholds, or the defaults when
// the section is absent.
func (c *Config) EngineThresholds() scoring.ScoreThresholds {
	if c != nil && c.Thresholds != nil {
		return *c.Thresholds
	}
	return scoring.DefaultThresholds()
}

// BonusPolicy materializes the configured bonus knobs, or the default
// policy when the section is absent.
func (c *Config) BonusPolicy() scoring.BonusPolicy {
	if c == nil || c.Bonus == nil {
		return scoring.DefaultBonusPolicy()
	}
	return scoring.BonusPolicy{
		CriticalMatchPoints:  c.Bonus.CriticalMatchPoints,
		PreferredMatchPoints: c.Bonus.PreferredMatchPoints,
		Penalty:              scoring.FlatPerMissPenalty(c.Bonus.CriticalMissPenalty),
	}
}
