package types

// ComponentScores are the externally produced qualitative sub-scores, each
// on a 0-100 scale. The engine treats them as untrusted and clamps
// out-of-range values rather than rejecting them.
type ComponentScores struct {
	CoreCompetency      float64 `json:"core_competency"`
	ExperienceSeniority float64 `json:"experience_seniority"`
	PotentialAbility    float64 `json:"potential_ability"`
	CompanyFit          float64 `json:"company_fit"`
}

// RequirementTally counts matched requirements against the total for one
// requirement class (critical or preferred).
type RequirementTally struct {
	Matched int `json:"matched"`
	Total   int `json:"total"`
}

// BonusBreakdown records the signed requirement-bonus adjustment layered on
// top of the 100 base points, together with the counts that produced it.
type BonusBreakdown struct {
	CriticalMatched  int     `json:"critical_matched"`
	CriticalTotal    int     `json:"critical_total"`
	PreferredMatched int     `json:"preferred_matched"`
	PreferredTotal   int     `json:"preferred_total"`
	Points           float64 `json:"points"`
}

// CategoryStatus is the four-level label derived from the final score.
type CategoryStatus string

// Category status values, from best to worst.
const (
	StatusExcellent CategoryStatus = "excellent"
	StatusGood      CategoryStatus = "good"
	StatusModerate  CategoryStatus = "moderate"
	StatusPoor      CategoryStatus = "poor"
)

// CompatibilityResult is the terminal record returned to the caller. It is
// created fresh per request and never persisted by the engine.
type CompatibilityResult struct {
	FinalScore        float64        `json:"final_score"`
	CategoryStatus    CategoryStatus `json:"category_status"`
	RecommendationKey string         `json:"recommendation_key"`
	Category1Score    float64        `json:"category1_score"`
	Category2Score    float64        `json:"category2_score"`
	Bonus             BonusBreakdown `json:"bonus"`
}
