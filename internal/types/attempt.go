// Package types provides type definitions for structured data used throughout the skillmatch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// PassThreshold is the default minimum score (percentage) for a passing attempt
const PassThreshold = 70

// Result represents the graded outcome of one test submission
type Result struct {
	// Score is the rounded percentage of correct answers, 0-100
	Score          int  `json:"score"`
	CorrectAnswers int  `json:"correct_answers"`
	TotalQuestions int  `json:"total_questions"`
	Passed         bool `json:"passed"`
}

// Attempt represents one completed, graded run of a test by a user.
// Attempts form an append-only audit log: they are created once per
// submission and never mutated or deleted.
type Attempt struct {
	ID               uuid.UUID      `json:"id"`
	TestID           string         `json:"test_id"`
	UserID           string         `json:"user_id"`
	Answers          map[string]int `json:"answers"`
	Result           Result         `json:"result"`
	TimeSpentSeconds int            `json:"time_spent_seconds"`
	CompletedAt      time.Time      `json:"completed_at"`
}

// AttemptStats represents aggregate statistics over a user's attempt history
type AttemptStats struct {
	TotalTests     int `json:"total_tests"`
	PassedTests    int `json:"passed_tests"`
	AverageScore   int `json:"average_score"`
	TotalTimeSpent int `json:"total_time_spent"`
	// RecentAttempts holds up to the five most recent attempts, newest first
	RecentAttempts []Attempt `json:"recent_attempts"`
}
