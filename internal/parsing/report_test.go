package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/compat-scorer/internal/types"
)

const fullReport = `# Compatibility Report

Total JD Requirements: 19
Matched: 15
Missing: 4
Match Rate: 78.95%

📊 Category Breakdown

Category        CV Total   JD Total   Matched   Missing   Match Rate
Technical       10         12         9         3         75.00

✅ Matched Requirements
- JD: "Python" | CV: "Python (Advanced)" | 💡 Exact skill match

❌ Missing Requirements
- JD: "Kubernetes" | 💡 Not present
`

func TestParseComparisonReport_FullReport(t *testing.T) {
	report := ParseComparisonReport(fullReport)

	assert.Equal(t, types.OverallSummary{
		TotalRequirements: 19,
		Matched:           15,
		Missing:           4,
		MatchRatePercent:  78.95,
	}, report.Overall)

	require.Len(t, report.Categories, 1)
	assert.Equal(t, types.CategorySummary{
		Name:             "Technical",
		CVTotal:          10,
		JDTotal:          12,
		Matched:          9,
		Missing:          3,
		MatchRatePercent: 75.0,
	}, report.Categories[0])

	require.Len(t, report.Matched, 1)
	assert.Equal(t, types.MatchedItem{
		JDRequirement: "Python",
		CVEvidence:    "Python (Advanced)",
		Rationale:     "Exact skill match",
	}, report.Matched[0])

	require.Len(t, report.Missing, 1)
	assert.Equal(t, types.MissingItem{
		JDRequirement: "Kubernetes",
		Rationale:     "Not present",
	}, report.Missing[0])

	assert.Equal(t, fullReport, report.SourceText)
}

func TestParseComparisonReport_EmptyInput(t *testing.T) {
	report := ParseComparisonReport("")

	assert.Equal(t, types.OverallSummary{}, report.Overall)
	assert.Empty(t, report.Categories)
	assert.Empty(t, report.Matched)
	assert.Empty(t, report.Missing)
}

func TestParseComparisonReport_WhitespaceOnlyInput(t *testing.T) {
	report := ParseComparisonReport("   \n\n \t \n")

	assert.Equal(t, types.OverallSummary{}, report.Overall)
	assert.Empty(t, report.Categories)
	assert.Empty(t, report.Matched)
	assert.Empty(t, report.Missing)
}

func TestParseComparisonReport_BracketDecoratedTotals(t *testing.T) {
	report := ParseComparisonReport("Total JD Requirements: [19]\nMatched: [15]\nMissing: -\nMatch Rate: [78.95%]\n")

	assert.Equal(t, 19, report.Overall.TotalRequirements)
	assert.Equal(t, 15, report.Overall.Matched)
	assert.Equal(t, 0, report.Overall.Missing)
	assert.Equal(t, 78.95, report.Overall.MatchRatePercent)
}

func TestParseComparisonReport_LegacyTotalsHeader(t *testing.T) {
	report := ParseComparisonReport("Total Requirements: 10\nMatched: 6\nMissing: 4\nMatch Rate: 60%\n")

	assert.Equal(t, 10, report.Overall.TotalRequirements)
	assert.Equal(t, 6, report.Overall.Matched)
	assert.Equal(t, 4, report.Overall.Missing)
	assert.Equal(t, 60.0, report.Overall.MatchRatePercent)
}

func TestParseComparisonReport_MissingOverallHeader(t *testing.T) {
	report := ParseComparisonReport("Matched: 6\nMissing: 4\nMatch Rate: 60%\n")

	// Without the totals header the overall summary stays all-zero even
	// though matched/missing lines are present.
	assert.Equal(t, types.OverallSummary{}, report.Overall)
}

func TestParseComparisonReport_LegacyCategoryFormat(t *testing.T) {
	text := `Total Requirements: 10

🔍 Skills by Category
Technical: 5/8 matched (62.50%)
Domain Knowledge: 1/2 matched (50%)
`
	report := ParseComparisonReport(text)

	require.Len(t, report.Categories, 2)
	assert.Equal(t, types.CategorySummary{
		Name:             "Technical",
		JDTotal:          8,
		Matched:          5,
		Missing:          3,
		MatchRatePercent: 62.5,
	}, report.Categories[0])
	assert.Equal(t, types.CategorySummary{
		Name:             "Domain Knowledge",
		JDTotal:          2,
		Matched:          1,
		Missing:          1,
		MatchRatePercent: 50.0,
	}, report.Categories[1])
}

func TestParseComparisonReport_LegacyCategoryClampsMissing(t *testing.T) {
	text := "🔍 Skills by Category\nSoft: 5/3 matched (100%)\n"
	report := ParseComparisonReport(text)

	require.Len(t, report.Categories, 1)
	// matched above total: missing clamps to zero instead of going negative
	assert.Equal(t, 0, report.Categories[0].Missing)
}

func TestParseComparisonReport_TabularWinsOverLegacy(t *testing.T) {
	text := `📊 Category Breakdown
Category   CV   JD   Matched   Missing   Rate
Technical  4    5    4         1         80.00

🔍 Skills by Category
Domain: 1/2 matched (50%)
`
	report := ParseComparisonReport(text)

	require.Len(t, report.Categories, 1)
	assert.Equal(t, "Technical", report.Categories[0].Name)
}

func TestParseComparisonReport_TokenFallbackRow(t *testing.T) {
	text := `📊 Category Breakdown
Category CV JD Matched Missing Rate
Soft Skills 4 5 4 1 80.00
`
	report := ParseComparisonReport(text)

	require.Len(t, report.Categories, 1)
	assert.Equal(t, types.CategorySummary{
		Name:             "Soft Skills",
		CVTotal:          4,
		JDTotal:          5,
		Matched:          4,
		Missing:          1,
		MatchRatePercent: 80.0,
	}, report.Categories[0])
}

func TestParseComparisonReport_GappedNameFallsThroughToTokenSplit(t *testing.T) {
	// the double space inside the name makes the column-gap split misalign
	// the fields; it must report no-match so the token split can take over
	text := `📊 Category Breakdown
Category        CV Total   JD Total   Matched   Missing   Match Rate
Soft  Skills  4  5  4  1  80.00
`
	report := ParseComparisonReport(text)

	require.Len(t, report.Categories, 1)
	assert.Equal(t, types.CategorySummary{
		Name:             "Soft Skills",
		CVTotal:          4,
		JDTotal:          5,
		Matched:          4,
		Missing:          1,
		MatchRatePercent: 80.0,
	}, report.Categories[0])
}

func TestParseComparisonReport_UnparseableRowSkipped(t *testing.T) {
	text := `📊 Category Breakdown
Category        CV Total   JD Total   Matched   Missing   Match Rate
──────────────────────────────────────────────────────────────────
Technical       10         12         9         3         75.00
no numbers on this row at all
`
	report := ParseComparisonReport(text)

	require.Len(t, report.Categories, 1)
	assert.Equal(t, "Technical", report.Categories[0].Name)
}

func TestParseComparisonReport_CategoryHeaderWithoutLabelRow(t *testing.T) {
	text := "📊 Category Breakdown\n\n✅ Matched Requirements\n"
	report := ParseComparisonReport(text)

	assert.Empty(t, report.Categories)
}

func TestParseComparisonReport_MatchedLineWithoutCVSkipped(t *testing.T) {
	text := `✅ Matched Requirements
- JD: "Python" | 💡 no CV quote on this line
- JD: "Go" | CV: "Go (5y)" | 💡 Exact skill match
`
	report := ParseComparisonReport(text)

	require.Len(t, report.Matched, 1)
	assert.Equal(t, "Go", report.Matched[0].JDRequirement)
}

func TestParseComparisonReport_MissingListStopsAtNextSection(t *testing.T) {
	text := `❌ Missing Requirements
- JD: "Kubernetes" | 💡 Not present

✅ Matched Requirements
- JD: "Python" | CV: "Python" | 💡 Exact skill match
`
	report := ParseComparisonReport(text)

	require.Len(t, report.Missing, 1)
	require.Len(t, report.Matched, 1)
	assert.Equal(t, "Kubernetes", report.Missing[0].JDRequirement)
}

func TestParseComparisonReport_RationaleFallsBackToPipe(t *testing.T) {
	text := "❌ Missing Requirements\n- JD: \"Terraform\" | No IaC experience found\n"
	report := ParseComparisonReport(text)

	require.Len(t, report.Missing, 1)
	assert.Equal(t, "No IaC experience found", report.Missing[0].Rationale)
}

func TestParseComparisonReport_SectionsOutOfOrder(t *testing.T) {
	text := `❌ Missing Requirements
- JD: "Kubernetes" | 💡 Not present

Total JD Requirements: 19
Matched: 15
Missing: 4
Match Rate: 78.95%
`
	report := ParseComparisonReport(text)

	assert.Equal(t, 19, report.Overall.TotalRequirements)
	require.Len(t, report.Missing, 1)
}

func TestParseComparisonReport_CaseInsensitiveHeaders(t *testing.T) {
	text := "TOTAL JD REQUIREMENTS: 7\nMATCHED: 5\nMISSING: 2\nMATCH RATE: 71.43%\n"
	report := ParseComparisonReport(text)

	assert.Equal(t, 7, report.Overall.TotalRequirements)
	assert.Equal(t, 5, report.Overall.Matched)
	assert.Equal(t, 2, report.Overall.Missing)
	assert.Equal(t, 71.43, report.Overall.MatchRatePercent)
}
