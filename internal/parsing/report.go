// Package parsing turns the raw free-text comparison report into a canonical
// ComparisonReport. The upstream text is produced by an unreliable
// text-generation process, so every extraction step is total: unrecognized
// structure degrades the affected section to zeroed or empty fields and the
// remaining sections are still parsed independently.
package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/compat-scorer/internal/types"
)

// Section header phrasings recognized in the raw report. Matching is
// case-insensitive; leading emoji markers are stripped first.
const (
	headerTotalCurrent    = "total jd requirements"
	headerTotalLegacy     = "total requirements"
	headerCategoryTabular = "category breakdown"
	headerCategoryLegacy  = "skills by category"
	headerMatched         = "matched requirements"
	headerMissing         = "missing requirements"
)

// sectionMarkers are the leading emoji used by the report generator to open
// a new section. A table row starting with one of these terminates the
// category table.
var sectionMarkers = []string{"📊", "✅", "❌", "💡", "🔍", "📋"}

var (
	legacyCategoryPattern = regexp.MustCompile(`^(.*?):\s*(\d+)\s*/\s*(\d+)\s*matched\s*\(\s*([0-9.]+)\s*%\s*\)`)
	jdQuotePattern        = regexp.MustCompile(`JD:\s*"([^"]*)"`)
	cvQuotePattern        = regexp.MustCompile(`CV:\s*"([^"]*)"`)
)

// ParseComparisonReport parses the full raw report text into a
// ComparisonReport. It is a pure function of its input and never fails: an
// empty or entirely unrecognizable input yields a report with all-zero and
// empty fields. Sections may appear in any order or be absent.
func ParseComparisonReport(text string) *types.ComparisonReport {
	lines := strings.Split(text, "\n")

	return &types.ComparisonReport{
		Overall:    parseOverall(lines),
		Categories: parseCategories(lines),
		Matched:    parseMatchedItems(lines),
		Missing:    parseMissingItems(lines),
		SourceText: text,
	}
}

// parseOverall locates the totals header (current or legacy phrasing) and
// then picks up the first Matched/Missing/Match Rate lines found anywhere
// after it. A missing header leaves the summary all-zero.
func parseOverall(lines []string) types.OverallSummary {
	var summary types.OverallSummary

	start := -1
	for i, line := range lines {
		normalized := normalizeLine(line)
		if strings.HasPrefix(normalized, headerTotalCurrent) || strings.HasPrefix(normalized, headerTotalLegacy) {
			summary.TotalRequirements = int(ParseNumericToken(afterColon(line)).Value)
			start = i
			break
		}
	}
	if start < 0 {
		return summary
	}

	var matchedSeen, missingSeen, rateSeen bool
	for _, line := range lines[start+1:] {
		normalized := normalizeLine(line)
		switch {
		case !matchedSeen && strings.HasPrefix(normalized, "matched:"):
			summary.Matched = int(ParseNumericToken(afterColon(line)).Value)
			matchedSeen = true
		case !missingSeen && strings.HasPrefix(normalized, "missing:"):
			summary.Missing = int(ParseNumericToken(afterColon(line)).Value)
			missingSeen = true
		case !rateSeen && strings.HasPrefix(normalized, "match rate:"):
			summary.MatchRatePercent = ParseNumericToken(afterColon(line)).Value
			rateSeen = true
		}
	}

	return summary
}

// parseCategories dispatches to the tabular or legacy inline format. The
// two are mutually exclusive; the tabular header wins when both appear.
func parseCategories(lines []string) []types.CategorySummary {
	for i, line := range lines {
		if strings.Contains(normalizeLine(line), headerCategoryTabular) {
			return parseCategoryTable(lines, i)
		}
	}
	for i, line := range lines {
		if strings.Contains(normalizeLine(line), headerCategoryLegacy) {
			return parseCategoryLegacy(lines, i)
		}
	}
	return nil
}

// parseCategoryTable reads the tabular category format: skip forward to the
// column-label line (first word "Category"), then parse every non-blank
// line as a data row until the next section marker. Rows that no strategy
// can split are skipped, not fatal.
func parseCategoryTable(lines []string, headerIdx int) []types.CategorySummary {
	labelIdx := -1
	for i := headerIdx + 1; i < len(lines); i++ {
		if startsWithSectionMarker(lines[i]) || isSectionHeader(lines[i]) {
			return nil
		}
		fields := strings.Fields(lines[i])
		if len(fields) > 0 && strings.EqualFold(fields[0], "category") {
			labelIdx = i
			break
		}
	}
	if labelIdx < 0 {
		return nil
	}

	var categories []types.CategorySummary
	for _, line := range lines[labelIdx+1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if startsWithSectionMarker(trimmed) || isSectionHeader(trimmed) {
			break
		}
		if row, ok := parseCategoryRow(trimmed); ok {
			categories = append(categories, row)
		}
	}
	return categories
}

// parseCategoryLegacy reads the legacy inline format, lines of the shape
// "Name: M/J matched (R%)". The legacy format does not state missing
// explicitly, so missing = J - M clamped to zero.
func parseCategoryLegacy(lines []string, headerIdx int) []types.CategorySummary {
	var categories []types.CategorySummary
	for _, line := range lines[headerIdx+1:] {
		trimmed := strings.TrimSpace(stripMarkers(line))
		if trimmed == "" {
			continue
		}
		if isSectionHeader(trimmed) {
			break
		}
		m := legacyCategoryPattern.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		matched := int(ParseNumericToken(m[2]).Value)
		jdTotal := int(ParseNumericToken(m[3]).Value)
		missing := jdTotal - matched
		if missing < 0 {
			missing = 0
		}
		categories = append(categories, types.CategorySummary{
			Name:             strings.TrimSpace(m[1]),
			JDTotal:          jdTotal,
			Matched:          matched,
			Missing:          missing,
			MatchRatePercent: ParseNumericToken(m[4]).Value,
		})
	}
	return categories
}

// parseMatchedItems reads the matched-requirements list. A line missing
// either quoted field is skipped, not fatal.
func parseMatchedItems(lines []string) []types.MatchedItem {
	var items []types.MatchedItem
	forEachItemLine(lines, headerMatched, func(line string) {
		jd := jdQuotePattern.FindStringSubmatch(line)
		cv := cvQuotePattern.FindStringSubmatch(line)
		if jd == nil || cv == nil {
			return
		}
		items = append(items, types.MatchedItem{
			JDRequirement: jd[1],
			CVEvidence:    cv[1],
			Rationale:     extractRationale(line),
		})
	})
	return items
}

// parseMissingItems reads the missing-requirements list; symmetric to the
// matched list but only the JD quoted field is required.
func parseMissingItems(lines []string) []types.MissingItem {
	var items []types.MissingItem
	forEachItemLine(lines, headerMissing, func(line string) {
		jd := jdQuotePattern.FindStringSubmatch(line)
		if jd == nil {
			return
		}
		items = append(items, types.MissingItem{
			JDRequirement: jd[1],
			Rationale:     extractRationale(line),
		})
	})
	return items
}

// forEachItemLine locates the section whose header contains the given
// phrase and invokes fn for every bullet line until the next section header.
func forEachItemLine(lines []string, header string, fn func(line string)) {
	start := -1
	for i, line := range lines {
		if strings.Contains(normalizeLine(line), header) {
			start = i
			break
		}
	}
	if start < 0 {
		return
	}

	for _, line := range lines[start+1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isSectionHeader(trimmed) {
			break
		}
		if !strings.HasPrefix(trimmed, "-") {
			continue
		}
		fn(trimmed)
	}
}

// extractRationale returns the trailing free text after the last recognized
// inline marker on an item line: the 💡 marker when present, otherwise the
// last pipe separator.
func extractRationale(line string) string {
	if idx := strings.LastIndex(line, "💡"); idx >= 0 {
		return strings.TrimSpace(line[idx+len("💡"):])
	}
	if idx := strings.LastIndex(line, "|"); idx >= 0 {
		return strings.TrimSpace(line[idx+1:])
	}
	return ""
}

// normalizeLine strips leading markers and lowercases for header matching.
func normalizeLine(line string) string {
	return strings.ToLower(strings.TrimSpace(stripMarkers(line)))
}

// stripMarkers removes leading section-marker emoji and surrounding space.
func stripMarkers(line string) string {
	trimmed := strings.TrimSpace(line)
	for changed := true; changed; {
		changed = false
		for _, marker := range sectionMarkers {
			if strings.HasPrefix(trimmed, marker) {
				trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, marker))
				changed = true
			}
		}
	}
	return trimmed
}

func startsWithSectionMarker(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, marker := range sectionMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}

// isSectionHeader reports whether the line opens one of the known report
// sections, in either current or legacy phrasing.
func isSectionHeader(line string) bool {
	normalized := normalizeLine(line)
	if strings.HasPrefix(normalized, headerTotalCurrent) || strings.HasPrefix(normalized, headerTotalLegacy) {
		return true
	}
	for _, header := range []string{headerCategoryTabular, headerCategoryLegacy, headerMatched, headerMissing} {
		if strings.Contains(normalized, header) {
			return true
		}
	}
	return false
}

// afterColon returns the text following the first colon, or the empty
// string when the line has none.
func afterColon(line string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return line[idx+1:]
	}
	return ""
}
