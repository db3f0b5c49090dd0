// Package engine wires the report parser and the scoring stages into the
// single entry point exposed to callers. The engine holds only validated
// configuration; every Score call builds its own report and result, so it
// is safe to invoke concurrently without locks.
package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/compat-scorer/internal/parsing"
	"github.com/jonathan/compat-scorer/internal/scoring"
	"github.com/jonathan/compat-scorer/internal/types"
)

// Engine scores CV/JD compatibility from a raw comparison report plus
// externally supplied component sub-scores and requirement tallies.
type Engine struct {
	weights    scoring.CategoryWeights
	thresholds scoring.ScoreThresholds
	bonus      scoring.BonusPolicy
	logger     *zap.Logger
}

// Option customizes an Engine at construction time.
type Option func(*Engine)

// WithLogger attaches a structured logger used for degradation events. The
// default is a no-op logger; logging never changes the computed result.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithBonusPolicy overrides the default requirement bonus policy.
func WithBonusPolicy(policy scoring.BonusPolicy) Option {
	return func(e *Engine) {
		e.bonus = policy
	}
}

// New validates the weights and thresholds once and returns a ready engine.
// Malformed configuration is a programmer error: it fails here, at
// construction, never at request time.
func New(weights scoring.CategoryWeights, thresholds scoring.ScoreThresholds, opts ...Option) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("engine configuration: %w", err)
	}
	if err := thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("engine configuration: %w", err)
	}

	e := &Engine{
		weights:    weights,
		thresholds: thresholds,
		bonus:      scoring.DefaultBonusPolicy(),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Parse exposes the structured form of a raw report for callers that want
// the breakdown alongside the score. It never fails; unrecognized sections
// degrade to zeroed or empty fields.
func (e *Engine) Parse(rawReport string) *types.ComparisonReport {
	return parsing.ParseComparisonReport(rawReport)
}

// Score runs the straight-line pipeline: parse the raw report, derive the
// Category-1 score from the recomputed category rates, aggregate the
// component sub-scores, evaluate the requirement bonus, and compose the
// final result. The call is total: degraded input lowers the quality of
// the result, never its shape.
func (e *Engine) Score(rawReport string, components types.ComponentScores, critical, preferred types.RequirementTally) types.CompatibilityResult {
	report := parsing.ParseComparisonReport(rawReport)
	e.logDegradation(report, rawReport)

	category1 := scoring.CategoryOneScore(report.Categories, e.weights)
	category2 := scoring.ComponentScore(components, e.weights)
	bonus := scoring.EvaluateBonus(critical, preferred, e.bonus)

	return scoring.Compose(category1, category2, bonus, e.thresholds)
}

// ScoreReport is Score for callers that already hold a parsed report.
func (e *Engine) ScoreReport(report *types.ComparisonReport, components types.ComponentScores, critical, preferred types.RequirementTally) types.CompatibilityResult {
	category1 := scoring.CategoryOneScore(report.Categories, e.weights)
	category2 := scoring.ComponentScore(components, e.weights)
	bonus := scoring.EvaluateBonus(critical, preferred, e.bonus)

	return scoring.Compose(category1, category2, bonus, e.thresholds)
}

func (e *Engine) logDegradation(report *types.ComparisonReport, rawReport string) {
	if report.Overall.TotalRequirements == 0 && report.Overall.Matched == 0 {
		e.logger.Debug("overall summary not recognized in report",
			zap.Int("report_bytes", len(rawReport)))
	}
	if len(report.Categories) == 0 {
		e.logger.Debug("no category breakdown recognized in report",
			zap.Int("report_bytes", len(rawReport)))
	}
}
