// Package types provides type definitions for structured data used throughout the compatibility scoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// NumericToken is the transient result of extracting a number from a
// decorated report token. Present is false when the source text carried no
// digits (or was a lone dash); Value is always zero in that case.
type NumericToken struct {
	Value   float64
	Present bool
}

// OverallSummary holds the report-level requirement totals. Matched plus
// Missing is not guaranteed to equal TotalRequirements; the upstream text
// may be inconsistent and the values are surfaced exactly as parsed.
type OverallSummary struct {
	TotalRequirements int     `json:"total_requirements"`
	Matched           int     `json:"matched"`
	Missing           int     `json:"missing"`
	MatchRatePercent  float64 `json:"match_rate_percent"`
}

// CategorySummary is one row of the per-category breakdown. The
// MatchRatePercent field reflects what the upstream report claimed; the
// scoring side derives its own rate from the counts.
type CategorySummary struct {
	Name             string  `json:"name"`
	CVTotal          int     `json:"cv_total"`
	JDTotal          int     `json:"jd_total"`
	Matched          int     `json:"matched"`
	Missing          int     `json:"missing"`
	MatchRatePercent float64 `json:"match_rate_percent"`
}

// MatchedItem is one JD requirement the candidate satisfies, with the
// matching CV phrase and a human-readable justification.
type MatchedItem struct {
	JDRequirement string `json:"jd_requirement"`
	CVEvidence    string `json:"cv_evidence"`
	Rationale     string `json:"rationale"`
}

// MissingItem is one JD requirement with no satisfying CV evidence.
type MissingItem struct {
	JDRequirement string `json:"jd_requirement"`
	Rationale     string `json:"rationale"`
}

// ComparisonReport is the canonical structured form of one raw comparison
// report. It is built once per scoring request and never mutated afterwards;
// list ordering follows document order.
type ComparisonReport struct {
	Overall    OverallSummary    `json:"overall"`
	Categories []CategorySummary `json:"categories"`
	Matched    []MatchedItem     `json:"matched"`
	Missing    []MissingItem     `json:"missing"`
	SourceText string            `json:"-"`
}
