// Package types provides type definitions for structured data used throughout the skillmatch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Proficiency represents a candidate-declared skill level, independent of test outcome
type Proficiency string

// Known proficiency levels, from weakest to strongest
const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// SkillWithProficiency represents a declared skill annotated with a level
type SkillWithProficiency struct {
	Name        string      `json:"name" validate:"required"`
	Proficiency Proficiency `json:"proficiency,omitempty"`
}

// CandidateProfile represents the candidate data the core reads for matching.
// Profiles are owned by an external profile service; the core never writes them.
type CandidateProfile struct {
	Skills                []string               `json:"skills"`
	SkillsWithProficiency []SkillWithProficiency `json:"skills_with_proficiency,omitempty"`
	Location              string                 `json:"location"`
	PreferredJobTypes     []string               `json:"preferred_job_types,omitempty"`
	PreferredIndustries   []string               `json:"preferred_industries,omitempty"`
}

// DeclaredSkillNames returns the candidate's declared skills as plain names,
// merging the plain list with proficiency-annotated entries while preserving
// declaration order. Duplicates (case-insensitive) keep their first position.
func (p *CandidateProfile) DeclaredSkillNames() []string {
	if p == nil {
		return nil
	}
	seen := make(map[string]bool)
	names := make([]string, 0, len(p.Skills)+len(p.SkillsWithProficiency))
	add := func(name string) {
		key := normalizeFold(name)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		names = append(names, name)
	}
	for _, s := range p.Skills {
		add(s)
	}
	for _, s := range p.SkillsWithProficiency {
		add(s.Name)
	}
	return names
}

// ProficiencyFor returns the declared proficiency for a skill name
// (case-insensitive), or the empty proficiency when none is declared.
func (p *CandidateProfile) ProficiencyFor(name string) Proficiency {
	if p == nil {
		return ""
	}
	key := normalizeFold(name)
	for _, s := range p.SkillsWithProficiency {
		if normalizeFold(s.Name) == key {
			return s.Proficiency
		}
	}
	return ""
}
