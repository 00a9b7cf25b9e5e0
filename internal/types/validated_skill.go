// Package types provides type definitions for structured data used throughout the skillmatch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// ValidatedSkillRecord represents a skill backed by a passing test attempt.
// Records are derived from the attempt log on demand and never stored.
type ValidatedSkillRecord struct {
	Skill     string    `json:"skill"`
	TestID    string    `json:"test_id"`
	AttemptID uuid.UUID `json:"attempt_id"`
	// Score is the percentage scored on the backing attempt
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

// ValidationStats represents how much of a candidate's declared skill list
// is covered by passing test attempts
type ValidationStats struct {
	TotalSkills          int      `json:"total_skills"`
	ValidatedCount       int      `json:"validated_count"`
	UnvalidatedCount     int      `json:"unvalidated_count"`
	ValidationPercentage int      `json:"validation_percentage"`
	ValidatedSkills      []string `json:"validated_skills"`
	UnvalidatedSkills    []string `json:"unvalidated_skills"`
}
