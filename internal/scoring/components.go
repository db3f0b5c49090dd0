package scoring

import (
	"github.com/jonathan/compat-scorer/internal/types"
)

// ComponentScore reduces the four externally produced qualitative
// sub-scores to the single weighted Category-2 sub-score. Each input is
// clamped to [0,100] before weighting, never rejected: the sub-scores come
// from an external judgment process and are treated as untrusted but not
// adversarial. The result is bounded by the Category-2 ceiling sum.
func ComponentScore(scores types.ComponentScores, weights CategoryWeights) float64 {
	return weights.CoreCompetency*(clampPercent(scores.CoreCompetency)/100) +
		weights.ExperienceSeniority*(clampPercent(scores.ExperienceSeniority)/100) +
		weights.PotentialAbility*(clampPercent(scores.PotentialAbility)/100) +
		weights.CompanyFit*(clampPercent(scores.CompanyFit)/100)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
