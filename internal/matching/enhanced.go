package matching

import (
	"math"

	"github.com/jonathan/skillmatch/internal/skills"
	"github.com/jonathan/skillmatch/internal/types"
)

// Weighting of the two skill lists in the test-enhanced score
const (
	requiredSkillWeight  = 0.7
	preferredSkillWeight = 0.3

	// maxEnhancedMultiplier caps the per-skill test bonus
	maxEnhancedMultiplier = 1.5
)

// EnhancedScorer is the test-integrated strategy: each matched skill is
// boosted by the candidate's validated test result for it. Required-skill
// matches weigh 70%, preferred (tag) matches 30%, each normalized by its own
// list length. The result is a 0-100 percentage on a different scale from
// the base scorer.
type EnhancedScorer struct {
	// validated holds the candidate's validated skill records keyed by
	// normalized skill name, resolved before scoring
	validated map[string]types.ValidatedSkillRecord
}

// NewEnhancedScorer creates the test-enhanced strategy for one candidate's
// validated skill records. A nil map means no tests were taken.
func NewEnhancedScorer(validated map[string]types.ValidatedSkillRecord) *EnhancedScorer {
	return &EnhancedScorer{validated: validated}
}

// Name identifies the strategy
func (s *EnhancedScorer) Name() string { return StrategyTestEnhanced }

// Score computes the test-enhanced match percentage for one posting.
// Location, remoteness, recency and job type do not participate; only the
// skill evidence does.
func (s *EnhancedScorer) Score(job types.JobPosting, candidateSkills []string, _ string, _ *types.CandidateProfile) types.MatchResult {
	requiredScore, requiredMatched := s.listScore(job.RequiredSkills, candidateSkills)
	preferredScore, preferredMatched := s.listScore(job.Tags, candidateSkills)

	raw := (requiredScore*requiredSkillWeight + preferredScore*preferredSkillWeight) * 100

	matched := requiredMatched
	seen := make(map[string]bool, len(matched))
	for _, skill := range requiredMatched {
		seen[skills.Normalize(skill)] = true
	}
	for _, skill := range preferredMatched {
		if !seen[skills.Normalize(skill)] {
			matched = append(matched, skill)
		}
	}

	breakdown := types.ScoreBreakdown{Skill: raw}
	return finalize(StrategyTestEnhanced, job.ID, raw, matched, breakdown)
}

// listScore scores one skill list (required or preferred), normalized by the
// list's own length. An empty list contributes zero rather than full credit.
func (s *EnhancedScorer) listScore(wanted, candidateSkills []string) (float64, []string) {
	if len(wanted) == 0 || len(candidateSkills) == 0 {
		return 0, nil
	}

	total := 0.0
	var matched []string
	for _, want := range wanted {
		skill, ok := skills.AnyMatch(candidateSkills, want)
		if !ok {
			continue
		}
		matched = append(matched, want)
		total += s.enhancedMultiplier(skill, want)
	}
	return total / float64(len(wanted)), matched
}

// enhancedMultiplier converts the candidate's validated test percentage for
// a matched skill into a score multiplier, capped at 1.5. A matched skill
// with no test behind it contributes a plain 1.0.
func (s *EnhancedScorer) enhancedMultiplier(candidateSkill, wanted string) float64 {
	record, ok := s.validated[skills.Normalize(candidateSkill)]
	if !ok {
		record, ok = s.validated[skills.Normalize(wanted)]
	}
	if !ok {
		return 1.0
	}
	return math.Min(1.0+testProficiency(record.Score)*0.5, maxEnhancedMultiplier)
}

// testProficiency is a step function of the validated test percentage
func testProficiency(percentage int) float64 {
	switch {
	case percentage >= 70:
		return 1.0
	case percentage >= 50:
		return 0.7
	case percentage >= 30:
		return 0.4
	default:
		return 0.1
	}
}
