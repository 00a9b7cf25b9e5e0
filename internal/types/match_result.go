// Package types provides type definitions for structured data used throughout the skillmatch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Match thresholds on the 0-100 composite score
const (
	HighMatchThreshold = 70
	GoodMatchThreshold = 50
)

// ScoreBreakdown represents the per-component contributions to a match score.
// Components are on the base scorer's weighting; the test-enhanced scorer
// only populates Skill.
type ScoreBreakdown struct {
	Skill    float64 `json:"skill"`
	Location float64 `json:"location"`
	Remote   float64 `json:"remote"`
	Recency  float64 `json:"recency"`
	JobType  float64 `json:"job_type"`
}

// MatchResult represents the scored outcome for one (candidate, job) pair
type MatchResult struct {
	JobID string `json:"job_id"`
	// Score is the composite match score, clamped and rounded to 0-100
	Score         int            `json:"score"`
	MatchedSkills []string       `json:"matched_skills"`
	IsHighMatch   bool           `json:"is_high_match"`
	IsGoodMatch   bool           `json:"is_good_match"`
	Breakdown     ScoreBreakdown `json:"breakdown"`
	// Strategy names the scorer that produced this result; base and
	// test-enhanced scores are on different scales and must not be compared.
	Strategy string `json:"strategy,omitempty"`
}

// Recommendations represents a ranked, truncated list of match results
type Recommendations struct {
	UserID   string        `json:"user_id,omitempty"`
	Strategy string        `json:"strategy,omitempty"`
	Results  []MatchResult `json:"results"`
}
