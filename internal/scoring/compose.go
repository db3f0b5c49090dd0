package scoring

import (
	"github.com/jonathan/compat-scorer/internal/types"
)

// recommendationKeys is the fixed status-to-key lookup. Human-readable
// recommendation sentences are generated by an external collaborator from
// the key, never from free text.
var recommendationKeys = map[types.CategoryStatus]string{
	types.StatusExcellent: "strongly_recommended",
	types.StatusGood:      "recommended",
	types.StatusModerate:  "consider_with_reservations",
	types.StatusPoor:      "not_recommended",
}

// RecommendationKeyFor returns the recommendation key for a category status.
func RecommendationKeyFor(status types.CategoryStatus) string {
	return recommendationKeys[status]
}

// Compose assembles the terminal CompatibilityResult:
// clamp(category1 + category2 + bonus, 0, 100), the threshold-derived
// status, and the fixed recommendation key. It is a pure function;
// identical inputs always yield a field-for-field identical result.
func Compose(category1, category2 float64, bonus types.BonusBreakdown, thresholds ScoreThresholds) types.CompatibilityResult {
	final := round2(category1 + category2 + bonus.Points)
	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}

	status := thresholds.StatusFor(final)

	return types.CompatibilityResult{
		FinalScore:        final,
		CategoryStatus:    status,
		RecommendationKey: RecommendationKeyFor(status),
		Category1Score:    round2(category1),
		Category2Score:    round2(category2),
		Bonus:             bonus,
	}
}
