// Package catalog loads the external data the core consumes: job postings,
// candidate profiles, question banks, and the test-to-skill table.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/skillmatch/internal/types"
)

var validate = validator.New()

// LoadError represents an error during file I/O or JSON parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// loadJSON reads and unmarshals one document
func loadJSON(path string, out any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	if err := json.Unmarshal(content, out); err != nil {
		return &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}
	return nil
}

// LoadJobPostings loads a job catalog from a JSON file. Every posting must
// carry an id and a title; postings with unknown status values are rejected
// here rather than silently dropped during ranking.
func LoadJobPostings(path string) ([]types.JobPosting, error) {
	var jobs []types.JobPosting
	if err := loadJSON(path, &jobs); err != nil {
		return nil, err
	}
	for i := range jobs {
		if err := validate.Struct(&jobs[i]); err != nil {
			return nil, fmt.Errorf("invalid job posting at index %d: %w", i, err)
		}
	}
	return jobs, nil
}

// LoadCandidateProfile loads a candidate profile from a JSON file
func LoadCandidateProfile(path string) (*types.CandidateProfile, error) {
	var profile types.CandidateProfile
	if err := loadJSON(path, &profile); err != nil {
		return nil, err
	}
	if err := validate.Struct(&profile); err != nil {
		return nil, fmt.Errorf("invalid candidate profile: %w", err)
	}
	return &profile, nil
}

// LoadQuestionBank loads one test's question bank from a JSON file.
// Besides field validation, each question's correct answer index must point
// at one of its options.
func LoadQuestionBank(path string) (*types.QuestionBank, error) {
	var bank types.QuestionBank
	if err := loadJSON(path, &bank); err != nil {
		return nil, err
	}
	if err := validate.Struct(&bank); err != nil {
		return nil, fmt.Errorf("invalid question bank: %w", err)
	}
	for _, q := range bank.Questions {
		if q.CorrectAnswerIndex >= len(q.Options) {
			return nil, fmt.Errorf("question %s: correct answer index %d out of range for %d options",
				q.ID, q.CorrectAnswerIndex, len(q.Options))
		}
	}
	return &bank, nil
}

// LoadTestSkillMap loads the test-to-skill table from a JSON file of the
// form {"test-id": "Skill Name", ...}. Blank skill names are rejected.
func LoadTestSkillMap(path string) (map[string]string, error) {
	var table map[string]string
	if err := loadJSON(path, &table); err != nil {
		return nil, err
	}
	for testID, skill := range table {
		if testID == "" || skill == "" {
			return nil, fmt.Errorf("test skill map: blank test id or skill name (test %q -> %q)", testID, skill)
		}
	}
	return table, nil
}

// LoadAnswers loads a submitted answer map {"question-id": optionIndex}
// from a JSON file.
func LoadAnswers(path string) (map[string]int, error) {
	var answers map[string]int
	if err := loadJSON(path, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}
