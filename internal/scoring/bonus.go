package scoring

import (
	"github.com/jonathan/compat-scorer/internal/types"
)

// PenaltyPolicy computes the deduction for unmatched critical requirements.
// The product documentation gives conflicting rules for this deduction (a
// flat "-10%" without saying of what base), so the chosen interpretation
// lives behind this named function and nowhere else; correcting it later
// touches no other component.
type PenaltyPolicy func(criticalMissed int) float64

// FlatPerMissPenalty deducts a fixed number of points for every unmatched
// critical requirement.
func FlatPerMissPenalty(points float64) PenaltyPolicy {
	return func(criticalMissed int) float64 {
		if criticalMissed <= 0 {
			return 0
		}
		return float64(criticalMissed) * points
	}
}

// BonusPolicy configures the requirement bonus evaluator. The per-match
// increments are configurable so the composer can be tuned without touching
// the evaluator.
type BonusPolicy struct {
	CriticalMatchPoints  float64
	PreferredMatchPoints float64
	Penalty              PenaltyPolicy
}

// DefaultBonusPolicy returns the product's standard policy: +2 points per
// matched critical requirement, +1 per matched preferred requirement, and a
// flat 2-point deduction per unmatched critical requirement.
func DefaultBonusPolicy() BonusPolicy {
	return BonusPolicy{
		CriticalMatchPoints:  2,
		PreferredMatchPoints: 1,
		Penalty:              FlatPerMissPenalty(2),
	}
}

// EvaluateBonus computes the signed bonus adjustment from the critical and
// preferred requirement tallies. Inconsistent tallies (matched above total)
// are not rejected; the missed count is simply clamped to zero.
func EvaluateBonus(critical, preferred types.RequirementTally, policy BonusPolicy) types.BonusBreakdown {
	missed := critical.Total - critical.Matched
	if missed < 0 {
		missed = 0
	}

	points := float64(critical.Matched)*policy.CriticalMatchPoints +
		float64(preferred.Matched)*policy.PreferredMatchPoints
	if policy.Penalty != nil {
		points -= policy.Penalty(missed)
	}

	return types.BonusBreakdown{
		CriticalMatched:  critical.Matched,
		CriticalTotal:    critical.Total,
		PreferredMatched: preferred.Matched,
		PreferredTotal:   preferred.Total,
		Points:           round2(points),
	}
}
