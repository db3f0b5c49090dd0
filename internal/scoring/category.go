package scoring

import (
	"math"

	"github.com/jonathan/compat-scorer/internal/types"
)

// MatchRate derives a category match rate from its counts, rounded to two
// decimal places. It is defined as exactly 0 when jdTotal is zero, so it
// never divides by zero and never produces NaN. Upstream counts are not
// guaranteed consistent: matched above jdTotal clamps to 100 so the rate
// always stays inside [0,100].
func MatchRate(matched, jdTotal int) float64 {
	if jdTotal <= 0 {
		return 0
	}
	rate := float64(matched) / float64(jdTotal) * 100
	if rate > 100 {
		rate = 100
	}
	if rate < 0 {
		rate = 0
	}
	return round2(rate)
}

// CategoryOneScore computes the Category-1 sub-score from the parsed
// category breakdown. The rate is always re-derived from the counts; the
// MatchRatePercent the upstream report claimed is deliberately ignored so
// the score stays reproducible even when the stated percentage is wrong or
// stale. Only the first occurrence of each weighted category counts, which
// keeps the total bounded by the Category-1 ceiling sum.
func CategoryOneScore(categories []types.CategorySummary, weights CategoryWeights) float64 {
	total := 0.0
	seen := make(map[string]bool, 3)

	for _, category := range categories {
		key, ceiling, ok := weights.ceilingFor(category.Name)
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		total += ceiling * (MatchRate(category.Matched, category.JDTotal) / 100)
	}

	return total
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
