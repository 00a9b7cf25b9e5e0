// Package matching computes weighted 0-100 match scores for
// (candidate, job) pairs.
package matching

import (
	"math"

	"github.com/jonathan/skillmatch/internal/types"
)

// Strategy names
const (
	StrategyBase         = "base"
	StrategyTestEnhanced = "test-enhanced"
)

// Strategy is a job-match scorer. The base and test-enhanced strategies
// produce scores on different scales; callers pick one explicitly and must
// never compare results across strategies.
type Strategy interface {
	Name() string
	Score(job types.JobPosting, candidateSkills []string, candidateLocation string, profile *types.CandidateProfile) types.MatchResult
}

// finalize clamps and rounds a raw score and fills the shared result fields
func finalize(strategy, jobID string, raw float64, matchedSkills []string, breakdown types.ScoreBreakdown) types.MatchResult {
	score := roundHalfUp(raw)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return types.MatchResult{
		JobID:         jobID,
		Score:         score,
		MatchedSkills: matchedSkills,
		IsHighMatch:   score >= types.HighMatchThreshold,
		IsGoodMatch:   score >= types.GoodMatchThreshold,
		Breakdown:     breakdown,
		Strategy:      strategy,
	}
}

// roundHalfUp rounds to the nearest integer with .5 rounding away from zero
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
