// Package types provides type definitions for structured data used throughout the skillmatch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// JobPosting status values used by the catalog
const (
	JobStatusActive   = "active"
	JobStatusInactive = "inactive"
)

// JobPosting represents a posting from the external job catalog.
// The core only reads postings; lifecycle management belongs to the catalog.
type JobPosting struct {
	ID      string `json:"id" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Company string `json:"company"`
	// Tags are the posting's skill tags used by the base scorer
	Tags []string `json:"tags"`
	// RequiredSkills are the hard requirements used by the test-enhanced scorer
	RequiredSkills []string  `json:"required_skills,omitempty"`
	Location       string    `json:"location"`
	Remote         bool      `json:"remote"`
	PostedAt       time.Time `json:"posted_at"`
	JobType        string    `json:"job_type"`
	Status         string    `json:"status" validate:"omitempty,oneof=active inactive"`
}

// IsActive reports whether the posting should be considered for recommendations
func (j *JobPosting) IsActive() bool {
	return j.Status == JobStatusActive
}
