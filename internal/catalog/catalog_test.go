package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillmatch/internal/types"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJobPostings(t *testing.T) {
	path := writeTemp(t, "jobs.json", `[
		{
			"id": "job-1",
			"title": "Backend Developer",
			"company": "Acme",
			"tags": ["Python", "SQL"],
			"location": "Paris",
			"remote": true,
			"posted_at": "2025-03-01T00:00:00Z",
			"job_type": "CDI",
			"status": "active"
		}
	]`)

	jobs, err := LoadJobPostings(path)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "job-1", jobs[0].ID)
	assert.True(t, jobs[0].Remote)
	assert.True(t, jobs[0].IsActive())
}

func TestLoadJobPostings_MissingIDRejected(t *testing.T) {
	path := writeTemp(t, "jobs.json", `[{"title": "No ID"}]`)

	_, err := LoadJobPostings(path)
	assert.Error(t, err)
}

func TestLoadJobPostings_UnknownStatusRejected(t *testing.T) {
	path := writeTemp(t, "jobs.json", `[{"id": "job-1", "title": "X", "status": "archived"}]`)

	_, err := LoadJobPostings(path)
	assert.Error(t, err)
}

func TestLoadJobPostings_FileMissing(t *testing.T) {
	_, err := LoadJobPostings(filepath.Join(t.TempDir(), "absent.json"))

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadCandidateProfile(t *testing.T) {
	path := writeTemp(t, "profile.json", `{
		"skills": ["Python", "Django"],
		"skills_with_proficiency": [{"name": "SQL", "proficiency": "advanced"}],
		"location": "Paris",
		"preferred_job_types": ["CDI"]
	}`)

	profile, err := LoadCandidateProfile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "Django", "SQL"}, profile.DeclaredSkillNames())
	assert.Equal(t, types.ProficiencyAdvanced, profile.ProficiencyFor("sql"))
}

func TestLoadQuestionBank(t *testing.T) {
	path := writeTemp(t, "bank.json", `{
		"test_id": "test-sql",
		"questions": [
			{"id": "q1", "prompt": "SELECT is DML", "options": ["True", "False"], "correct_answer_index": 0}
		]
	}`)

	bank, err := LoadQuestionBank(path)
	require.NoError(t, err)
	assert.Equal(t, "test-sql", bank.TestID)
	require.Len(t, bank.Questions, 1)
}

func TestLoadQuestionBank_AnswerIndexOutOfRange(t *testing.T) {
	path := writeTemp(t, "bank.json", `{
		"test_id": "test-sql",
		"questions": [
			{"id": "q1", "prompt": "p", "options": ["True", "False"], "correct_answer_index": 5}
		]
	}`)

	_, err := LoadQuestionBank(path)
	assert.ErrorContains(t, err, "out of range")
}

func TestLoadTestSkillMap(t *testing.T) {
	path := writeTemp(t, "map.json", `{"test-sql": "SQL", "test-python": "Python"}`)

	table, err := LoadTestSkillMap(path)
	require.NoError(t, err)
	assert.Equal(t, "SQL", table["test-sql"])
	assert.Len(t, table, 2)
}

func TestLoadTestSkillMap_BlankSkillRejected(t *testing.T) {
	path := writeTemp(t, "map.json", `{"test-sql": ""}`)

	_, err := LoadTestSkillMap(path)
	assert.Error(t, err)
}

func TestLoadAnswers(t *testing.T) {
	path := writeTemp(t, "answers.json", `{"q1": 0, "q2": 2}`)

	answers, err := LoadAnswers(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"q1": 0, "q2": 2}, answers)
}
