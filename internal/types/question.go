// Package types provides type definitions for structured data used throughout the skillmatch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Question represents a single multiple-choice question from a test's question bank.
// Question banks are immutable reference data owned by the test catalog.
type Question struct {
	ID                 string   `json:"id" validate:"required"`
	Prompt             string   `json:"prompt" validate:"required"`
	Options            []string `json:"options" validate:"min=2"`
	CorrectAnswerIndex int      `json:"correct_answer_index" validate:"gte=0"`
	Explanation        string   `json:"explanation,omitempty"`
	// Complexity is a difficulty hint in [0.0, 1.0]; it does not affect grading.
	Complexity float64 `json:"complexity,omitempty"`
}

// QuestionBank represents the ordered question list for one test
type QuestionBank struct {
	TestID    string     `json:"test_id" validate:"required"`
	Questions []Question `json:"questions" validate:"dive"`
}
