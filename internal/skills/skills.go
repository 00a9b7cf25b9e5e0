// Package skills provides skill-name normalization, proficiency weighting,
// and the fuzzy predicate used to match candidate skills against job tags.
package skills

import (
	"strings"

	"github.com/jonathan/skillmatch/internal/types"
)

// Proficiency multipliers applied per matched tag by the base scorer
const (
	multiplierBeginner     = 1.0
	multiplierIntermediate = 1.5
	multiplierAdvanced     = 2.0
	multiplierExpert       = 2.5
)

// Normalize lowercases and trims a skill name for case-insensitive comparison.
// It returns "" for blank input so callers can skip empty entries.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Match reports whether a candidate skill satisfies a job tag.
//
// The predicate is intentionally loose: case-insensitive bidirectional
// substring containment, so "Postgres" matches the tag "PostgreSQL" and
// vice versa. The looseness tolerates naming variants at the cost of known
// false positives ("Java" matches "JavaScript"); replacing it with a
// normalized skill taxonomy only requires changing this function.
func Match(skill, tag string) bool {
	s := Normalize(skill)
	t := Normalize(tag)
	if s == "" || t == "" {
		return false
	}
	return strings.Contains(s, t) || strings.Contains(t, s)
}

// AnyMatch reports whether any candidate skill satisfies the tag, returning
// the first matching skill name as declared by the candidate.
func AnyMatch(candidateSkills []string, tag string) (string, bool) {
	for _, skill := range candidateSkills {
		if Match(skill, tag) {
			return skill, true
		}
	}
	return "", false
}

// ProficiencyMultiplier returns the per-tag contribution for a declared
// proficiency level. Unknown or missing levels count as a plain match.
func ProficiencyMultiplier(p types.Proficiency) float64 {
	switch p {
	case types.ProficiencyBeginner:
		return multiplierBeginner
	case types.ProficiencyIntermediate:
		return multiplierIntermediate
	case types.ProficiencyAdvanced:
		return multiplierAdvanced
	case types.ProficiencyExpert:
		return multiplierExpert
	default:
		return multiplierBeginner
	}
}
