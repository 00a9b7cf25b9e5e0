package validation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillmatch/internal/types"
)

// stubSource serves a fixed attempt history
type stubSource struct {
	attempts []types.Attempt
	err      error
}

func (s *stubSource) ListAttempts(_ context.Context, _ string) ([]types.Attempt, error) {
	return s.attempts, s.err
}

var testSkillTable = map[string]string{
	"test-sql":    "SQL",
	"test-python": "Python",
	"test-django": "Django",
}

func attemptAt(testID string, score int, completedAt time.Time) types.Attempt {
	return types.Attempt{
		ID:          uuid.New(),
		TestID:      testID,
		UserID:      "user-7",
		Result:      types.Result{Score: score, Passed: score >= types.PassThreshold},
		CompletedAt: completedAt,
	}
}

func TestValidatedSkills_PassingAttemptValidates(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	source := &stubSource{attempts: []types.Attempt{
		attemptAt("test-sql", 40, base),                  // fail
		attemptAt("test-sql", 80, base.Add(time.Hour)),   // pass
		attemptAt("test-python", 90, base.Add(2*time.Hour)),
	}}
	resolver := NewResolver(source, testSkillTable)

	validated, err := resolver.ValidatedSkills(context.Background(), "user-7")
	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "SQL"}, validated)
}

func TestValidatedSkills_NoRevocationAfterLaterFailure(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	source := &stubSource{attempts: []types.Attempt{
		attemptAt("test-sql", 80, base),                // pass
		attemptAt("test-sql", 30, base.Add(time.Hour)), // later fail must not revoke
	}}
	resolver := NewResolver(source, testSkillTable)

	validated, err := resolver.ValidatedSkills(context.Background(), "user-7")
	require.NoError(t, err)
	assert.Equal(t, []string{"SQL"}, validated)
}

func TestValidatedSkills_UnmappedTestIgnored(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	source := &stubSource{attempts: []types.Attempt{
		attemptAt("test-unknown", 100, base),
	}}
	resolver := NewResolver(source, testSkillTable)

	validated, err := resolver.ValidatedSkills(context.Background(), "user-7")
	require.NoError(t, err)
	assert.Empty(t, validated)
}

func TestValidatedSkills_EmptyHistory(t *testing.T) {
	resolver := NewResolver(&stubSource{}, testSkillTable)

	validated, err := resolver.ValidatedSkills(context.Background(), "user-7")
	require.NoError(t, err)
	assert.Empty(t, validated)
}

func TestValidatedSkillsWithScore_MostRecentPassingWins(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	first := attemptAt("test-sql", 95, base)
	second := attemptAt("test-sql", 75, base.Add(time.Hour))
	source := &stubSource{attempts: []types.Attempt{first, second}}
	resolver := NewResolver(source, testSkillTable)

	records, err := resolver.ValidatedSkillsWithScore(context.Background(), "user-7")
	require.NoError(t, err)

	record, ok := records["sql"]
	require.True(t, ok)
	// Most recent passing attempt wins even with a lower score
	assert.Equal(t, second.ID, record.AttemptID)
	assert.Equal(t, 75, record.Score)
	assert.Equal(t, "SQL", record.Skill)
	assert.Equal(t, "test-sql", record.TestID)
}

func TestFilterToValidated_PreservesCandidateOrder(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	source := &stubSource{attempts: []types.Attempt{
		attemptAt("test-django", 85, base),
		attemptAt("test-sql", 70, base.Add(time.Hour)),
	}}
	resolver := NewResolver(source, testSkillTable)

	filtered, err := resolver.FilterToValidated(context.Background(), []string{"django", "Rust", "sql"}, "user-7")
	require.NoError(t, err)

	// Case-insensitive intersection, candidate spelling and order kept
	assert.Equal(t, []string{"django", "sql"}, filtered)
}

func TestValidationStats(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	source := &stubSource{attempts: []types.Attempt{
		attemptAt("test-python", 90, base),
	}}
	resolver := NewResolver(source, testSkillTable)

	stats, err := resolver.ValidationStats(context.Background(), []string{"Python", "Rust", "Go"}, "user-7")
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalSkills)
	assert.Equal(t, 1, stats.ValidatedCount)
	assert.Equal(t, 2, stats.UnvalidatedCount)
	assert.Equal(t, 33, stats.ValidationPercentage)
	assert.Equal(t, []string{"Python"}, stats.ValidatedSkills)
	assert.Equal(t, []string{"Rust", "Go"}, stats.UnvalidatedSkills)
}

func TestValidationStats_NoDeclaredSkills(t *testing.T) {
	resolver := NewResolver(&stubSource{}, testSkillTable)

	stats, err := resolver.ValidationStats(context.Background(), nil, "user-7")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalSkills)
	assert.Equal(t, 0, stats.ValidationPercentage)
}

func TestResolver_SourceErrorPropagates(t *testing.T) {
	resolver := NewResolver(&stubSource{err: errors.New("connection reset")}, testSkillTable)

	_, err := resolver.ValidatedSkills(context.Background(), "user-7")
	assert.Error(t, err)
}
