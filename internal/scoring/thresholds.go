package scoring

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/compat-scorer/internal/types"
)

// ScoreThresholds are the lower bounds of the category status bands. The
// bands partition [0,100]: scores at or above Excellent are excellent, at
// or above Good are good, at or above Moderate are moderate, and everything
// below Moderate is poor.
type ScoreThresholds struct {
	Excellent float64 `json:"excellent" validate:"gt=0,lt=100"`
	Good      float64 `json:"good" validate:"gt=0,lt=100"`
	Moderate  float64 `json:"moderate" validate:"gt=0,lt=100"`
}

// DefaultThresholds returns the product's standard bands: 80/60/40.
func DefaultThresholds() ScoreThresholds {
	return ScoreThresholds{Excellent: 80, Good: 60, Moderate: 40}
}

// Validate enforces strictly descending, non-overlapping bands. Violations
// are configuration errors, fatal at engine construction.
func (t ScoreThresholds) Validate() error {
	if err := validator.New().Struct(t); err != nil {
		return fmt.Errorf("invalid score thresholds: %w", err)
	}
	if !(t.Excellent > t.Good && t.Good > t.Moderate) {
		return fmt.Errorf("score thresholds must be strictly descending: excellent=%g good=%g moderate=%g",
			t.Excellent, t.Good, t.Moderate)
	}
	return nil
}

// StatusFor selects the category status for a final score. The mapping is
// total: every score in [0,100] lands in exactly one band.
func (t ScoreThresholds) StatusFor(score float64) types.CategoryStatus {
	switch {
	case score >= t.Excellent:
		return types.StatusExcellent
	case score >= t.Good:
		return types.StatusGood
	case score >= t.Moderate:
		return types.StatusModerate
	default:
		return types.StatusPoor
	}
}
