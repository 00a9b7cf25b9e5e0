package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/skillmatch/internal/types"
)

func validatedRecords(scores map[string]int) map[string]types.ValidatedSkillRecord {
	records := make(map[string]types.ValidatedSkillRecord, len(scores))
	for skill, score := range scores {
		records[skill] = types.ValidatedSkillRecord{Skill: skill, Score: score}
	}
	return records
}

func TestEnhancedScore_RequiredAndPreferredWeighting(t *testing.T) {
	scorer := NewEnhancedScorer(validatedRecords(map[string]int{"python": 90}))
	job := types.JobPosting{
		ID:             "job-1",
		RequiredSkills: []string{"Python"},
		Tags:           []string{"Python", "SQL"},
	}

	result := scorer.Score(job, []string{"Python"}, "", nil)

	// Required: 1.5/1 * 0.7 = 1.05; preferred: 1.5/2 * 0.3 = 0.225
	// Raw = 127.5, clamped to 100
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, []string{"Python"}, result.MatchedSkills)
	assert.Equal(t, StrategyTestEnhanced, result.Strategy)
}

func TestEnhancedScore_NoTestsPlainMatch(t *testing.T) {
	scorer := NewEnhancedScorer(nil)
	job := types.JobPosting{
		ID:             "job-2",
		RequiredSkills: []string{"Python", "SQL"},
	}

	result := scorer.Score(job, []string{"Python"}, "", nil)

	// Required: 1.0/2 * 0.7 = 0.35 -> 35; no preferred list contributes 0
	assert.Equal(t, 35, result.Score)
}

func TestEnhancedScore_MultiplierSteps(t *testing.T) {
	tests := []struct {
		name       string
		percentage int
		want       float64
	}{
		{"high score full bonus", 85, 1.5},
		{"mid score", 60, 1.35},
		{"low score", 40, 1.2},
		{"very low score", 10, 1.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := NewEnhancedScorer(validatedRecords(map[string]int{"go": tt.percentage}))
			assert.InDelta(t, tt.want, scorer.enhancedMultiplier("Go", "Go"), 0.0001)
		})
	}
}

func TestEnhancedScore_EmptyListsDegradeToZero(t *testing.T) {
	scorer := NewEnhancedScorer(nil)

	result := scorer.Score(types.JobPosting{ID: "job-3"}, []string{"Python"}, "", nil)
	assert.Equal(t, 0, result.Score)

	result = scorer.Score(types.JobPosting{ID: "job-4", RequiredSkills: []string{"Go"}}, nil, "", nil)
	assert.Equal(t, 0, result.Score)
}

func TestEnhancedScore_MatchedSkillsDeduplicated(t *testing.T) {
	scorer := NewEnhancedScorer(nil)
	job := types.JobPosting{
		ID:             "job-5",
		RequiredSkills: []string{"Python"},
		Tags:           []string{"python", "Django"},
	}

	result := scorer.Score(job, []string{"Python", "Django"}, "", nil)

	// "Python" appears in both lists but is reported once
	assert.Equal(t, []string{"Python", "Django"}, result.MatchedSkills)
}

func TestEnhancedScore_LooksUpRecordByTagWhenSkillUnknown(t *testing.T) {
	// The candidate declares "Postgres" but the validated record is keyed by
	// the canonical tag name
	scorer := NewEnhancedScorer(validatedRecords(map[string]int{"postgresql": 95}))

	multiplier := scorer.enhancedMultiplier("Postgres", "PostgreSQL")
	assert.Equal(t, 1.5, multiplier)
}
