// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/compat-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintComparisonReport outputs a human-readable summary of the parsed report.
func (p *Printer) PrintComparisonReport(report *types.ComparisonReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total JD requirements: %d\n", report.Overall.TotalRequirements))
	sb.WriteString(fmt.Sprintf("Matched: %d   Missing: %d\n", report.Overall.Matched, report.Overall.Missing))
	sb.WriteString(fmt.Sprintf("Stated match rate: %.2f%%\n", report.Overall.MatchRatePercent))

	if len(report.Categories) > 0 {
		sb.WriteString("\nCategories:\n")
		count := min(len(report.Categories), maxItemsToShow)
		for i := 0; i < count; i++ {
			c := report.Categories[i]
			sb.WriteString(fmt.Sprintf("  • %s: %d/%d matched\n", c.Name, c.Matched, c.JDTotal))
		}
		if len(report.Categories) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Categories)-maxItemsToShow))
		}
	}

	if len(report.Missing) > 0 {
		sb.WriteString("\nMissing requirements:\n")
		count := min(len(report.Missing), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.Missing[i].JDRequirement))
		}
		if len(report.Missing) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Missing)-3))
		}
	}

	p.printBox("PARSED COMPARISON REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs the composed compatibility result with its breakdown.
func (p *Printer) PrintResult(result *types.CompatibilityResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Final score:     %.2f\n", result.FinalScore))
	sb.WriteString(fmt.Sprintf("Status:          %s\n", result.CategoryStatus))
	sb.WriteString(fmt.Sprintf("Recommendation:  %s\n", result.RecommendationKey))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Category-1:      %.2f\n", result.Category1Score))
	sb.WriteString(fmt.Sprintf("Category-2:      %.2f\n", result.Category2Score))
	sb.WriteString(fmt.Sprintf("Bonus:           %+.2f (critical %d/%d, preferred %d/%d)",
		result.Bonus.Points,
		result.Bonus.CriticalMatched, result.Bonus.CriticalTotal,
		result.Bonus.PreferredMatched, result.Bonus.PreferredTotal))

	p.printBox("COMPATIBILITY RESULT", sb.String())
}
