// Package validation derives validated skills from passing test attempts.
package validation

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/jonathan/skillmatch/internal/skills"
	"github.com/jonathan/skillmatch/internal/types"
)

// AttemptSource is the slice of the attempt store the resolver reads
type AttemptSource interface {
	ListAttempts(ctx context.Context, userID string) ([]types.Attempt, error)
}

// Resolver turns a user's attempt history into validated skills using an
// injectable test-to-skill table. One test validates exactly one skill.
// Validation is permanent: once a user has passed a test, later failing
// re-attempts never revoke the skill.
type Resolver struct {
	source AttemptSource
	// testSkills maps a test id to the canonical skill name it validates
	testSkills map[string]string
}

// NewResolver creates a resolver over an attempt source and a test-to-skill
// table. The table is copied; later caller mutation has no effect.
func NewResolver(source AttemptSource, testSkills map[string]string) *Resolver {
	table := make(map[string]string, len(testSkills))
	for testID, skill := range testSkills {
		table[testID] = skill
	}
	return &Resolver{source: source, testSkills: table}
}

// SkillForTest returns the canonical skill a test validates, if the test is mapped
func (r *Resolver) SkillForTest(testID string) (string, bool) {
	skill, ok := r.testSkills[testID]
	return skill, ok
}

// ValidatedSkills returns the canonical names of every skill for which the
// user has at least one passing attempt, sorted alphabetically. Attempts on
// unmapped tests are ignored; a user with no attempts gets an empty list.
func (r *Resolver) ValidatedSkills(ctx context.Context, userID string) ([]string, error) {
	records, err := r.ValidatedSkillsWithScore(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(records))
	for _, record := range records {
		names = append(names, record.Skill)
	}
	sort.Strings(names)
	return names, nil
}

// ValidatedSkillsWithScore returns one record per validated skill, keyed by
// the normalized skill name. When several passing attempts back the same
// skill, the most recent by completion timestamp wins.
func (r *Resolver) ValidatedSkillsWithScore(ctx context.Context, userID string) (map[string]types.ValidatedSkillRecord, error) {
	attempts, err := r.source.ListAttempts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve validated skills for user %s: %w", userID, err)
	}

	records := make(map[string]types.ValidatedSkillRecord)
	for _, attempt := range attempts {
		if !attempt.Result.Passed {
			continue
		}
		skill, ok := r.testSkills[attempt.TestID]
		if !ok {
			continue
		}
		key := skills.Normalize(skill)
		existing, seen := records[key]
		if seen && !attempt.CompletedAt.After(existing.CompletedAt) {
			continue
		}
		records[key] = types.ValidatedSkillRecord{
			Skill:       skill,
			TestID:      attempt.TestID,
			AttemptID:   attempt.ID,
			Score:       attempt.Result.Score,
			CompletedAt: attempt.CompletedAt,
		}
	}
	return records, nil
}

// FilterToValidated returns the candidate's declared skills that are backed
// by a passing attempt. Comparison is case-insensitive and the candidate's
// declaration order is preserved.
func (r *Resolver) FilterToValidated(ctx context.Context, candidateSkills []string, userID string) ([]string, error) {
	records, err := r.ValidatedSkillsWithScore(ctx, userID)
	if err != nil {
		return nil, err
	}

	validated := make([]string, 0, len(candidateSkills))
	for _, skill := range candidateSkills {
		if _, ok := records[skills.Normalize(skill)]; ok {
			validated = append(validated, skill)
		}
	}
	return validated, nil
}

// ValidationStats summarizes how much of the candidate's declared skill list
// is validated by passing attempts.
func (r *Resolver) ValidationStats(ctx context.Context, candidateSkills []string, userID string) (types.ValidationStats, error) {
	records, err := r.ValidatedSkillsWithScore(ctx, userID)
	if err != nil {
		return types.ValidationStats{}, err
	}

	stats := types.ValidationStats{
		TotalSkills:       len(candidateSkills),
		ValidatedSkills:   make([]string, 0, len(candidateSkills)),
		UnvalidatedSkills: make([]string, 0, len(candidateSkills)),
	}
	for _, skill := range candidateSkills {
		if _, ok := records[skills.Normalize(skill)]; ok {
			stats.ValidatedSkills = append(stats.ValidatedSkills, skill)
		} else {
			stats.UnvalidatedSkills = append(stats.UnvalidatedSkills, skill)
		}
	}
	stats.ValidatedCount = len(stats.ValidatedSkills)
	stats.UnvalidatedCount = len(stats.UnvalidatedSkills)
	if stats.TotalSkills > 0 {
		ratio := float64(stats.ValidatedCount) / float64(stats.TotalSkills) * 100
		stats.ValidationPercentage = int(math.Floor(ratio + 0.5))
	}
	return stats, nil
}
