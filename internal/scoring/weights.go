// Package scoring combines a parsed comparison report with externally
// supplied component sub-scores and requirement tallies into the final
// deterministic compatibility score.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// weightSumTolerance absorbs float representation noise when checking the
// 100-point ceiling invariant.
const weightSumTolerance = 1e-9

// CategoryWeights holds the explicit per-category point ceilings.
// Category-1 ceilings cover the report-derived skill categories; Category-2
// ceilings cover the qualitative component sub-scores. Together they must
// sum to exactly 100 base points.
type CategoryWeights struct {
	// Category-1 ceilings (report-derived).
	Technical float64 `json:"technical" validate:"gte=0"`
	Domain    float64 `json:"domain" validate:"gte=0"`
	Soft      float64 `json:"soft" validate:"gte=0"`

	// Category-2 ceilings (qualitative components).
	CoreCompetency      float64 `json:"core_competency" validate:"gte=0"`
	ExperienceSeniority float64 `json:"experience_seniority" validate:"gte=0"`
	PotentialAbility    float64 `json:"potential_ability" validate:"gte=0"`
	CompanyFit          float64 `json:"company_fit" validate:"gte=0"`
}

// DefaultWeights returns the product's standard ceilings: 20/5/15 for
// Category-1 and 25/20/10/5 for Category-2.
func DefaultWeights() CategoryWeights {
	return CategoryWeights{
		Technical:           20,
		Domain:              5,
		Soft:                15,
		CoreCompetency:      25,
		ExperienceSeniority: 20,
		PotentialAbility:    10,
		CompanyFit:          5,
	}
}

// Category1Total returns the sum of the Category-1 ceilings.
func (w CategoryWeights) Category1Total() float64 {
	return w.Technical + w.Domain + w.Soft
}

// Category2Total returns the sum of the Category-2 ceilings.
func (w CategoryWeights) Category2Total() float64 {
	return w.CoreCompetency + w.ExperienceSeniority + w.PotentialAbility + w.CompanyFit
}

// Validate checks the weights using the validator and enforces the
// 100-base-point invariant. Violations are configuration errors, fatal at
// engine construction, never at request time.
func (w CategoryWeights) Validate() error {
	if err := validator.New().Struct(w); err != nil {
		return fmt.Errorf("invalid category weights: %w", err)
	}

	total := w.Category1Total() + w.Category2Total()
	if math.Abs(total-100) > weightSumTolerance {
		return fmt.Errorf("category ceilings must sum to 100 base points, got %g", total)
	}

	return nil
}

// ceilingFor maps a report category name to its canonical key and
// Category-1 ceiling. Names are matched case-insensitively by prefix so
// that variants like "Technical Skills" still resolve; unknown categories
// carry no weight.
func (w CategoryWeights) ceilingFor(name string) (string, float64, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.HasPrefix(n, "technical"):
		return "technical", w.Technical, true
	case strings.HasPrefix(n, "domain"):
		return "domain", w.Domain, true
	case strings.HasPrefix(n, "soft"):
		return "soft", w.Soft, true
	}
	return "", 0, false
}
