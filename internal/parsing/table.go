package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/compat-scorer/internal/types"
)

// rowStrategy attempts to split one category table row into a name and five
// numeric fields (CV total, JD total, matched, missing, rate). Each
// strategy is total and reports no-match instead of partial garbage, so new
// strategies can be appended without touching the existing ones.
type rowStrategy func(line string) (types.CategorySummary, bool)

// rowStrategies are tried in order; the first match wins. Upstream report
// formatting is not contractually stable, hence the fallback chain.
var rowStrategies = []rowStrategy{splitOnColumnGaps, splitOnDigitBoundary}

var columnGapPattern = regexp.MustCompile(`\s{2,}`)

// parseCategoryRow runs the strategy chain over one table row.
func parseCategoryRow(line string) (types.CategorySummary, bool) {
	for _, strategy := range rowStrategies {
		if row, ok := strategy(line); ok {
			return row, true
		}
	}
	return types.CategorySummary{}, false
}

// splitOnColumnGaps splits the row on runs of two or more whitespace
// characters, the delimiter used by well-formed tables.
func splitOnColumnGaps(line string) (types.CategorySummary, bool) {
	fields := columnGapPattern.Split(strings.TrimSpace(line), -1)
	if len(fields) < 6 {
		return types.CategorySummary{}, false
	}
	return buildCategoryRow(fields[0], fields[1:6])
}

// splitOnDigitBoundary is the token-level fallback for rows whose columns
// collapsed to single spaces: everything before the first numeric-looking
// token is the category name, the five tokens from there are the numeric
// fields.
func splitOnDigitBoundary(line string) (types.CategorySummary, bool) {
	tokens := strings.Fields(line)

	numStart := -1
	for i, token := range tokens {
		if startsNumeric(token) {
			numStart = i
			break
		}
	}
	if numStart <= 0 || len(tokens)-numStart < 5 {
		return types.CategorySummary{}, false
	}

	name := strings.Join(tokens[:numStart], " ")
	return buildCategoryRow(name, tokens[numStart:numStart+5])
}

// buildCategoryRow assembles a CategorySummary from a name and five raw
// numeric tokens, each run through the token normalizer. A token that
// carries no number means the candidate split misread the row, so the
// strategy reports no-match and the next one gets its turn.
func buildCategoryRow(name string, nums []string) (types.CategorySummary, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.CategorySummary{}, false
	}

	tokens := make([]types.NumericToken, len(nums))
	for i, raw := range nums {
		tokens[i] = ParseNumericToken(raw)
		if !tokens[i].Present {
			return types.CategorySummary{}, false
		}
	}

	return types.CategorySummary{
		Name:             name,
		CVTotal:          int(tokens[0].Value),
		JDTotal:          int(tokens[1].Value),
		Matched:          int(tokens[2].Value),
		Missing:          int(tokens[3].Value),
		MatchRatePercent: tokens[4].Value,
	}, true
}

func startsNumeric(token string) bool {
	if token == "" {
		return false
	}
	c := token[0]
	return (c >= '0' && c <= '9') || c == '-' || c == '['
}
