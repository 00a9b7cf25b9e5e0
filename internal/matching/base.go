package matching

import (
	"math"
	"strings"
	"time"

	"github.com/jonathan/skillmatch/internal/skills"
	"github.com/jonathan/skillmatch/internal/types"
)

// Component weights for the base scorer; they sum to 100
const (
	weightSkill    = 50.0
	weightLocation = 20.0
	weightRemote   = 10.0
	weightRecency  = 10.0
	weightJobType  = 10.0

	// recencyDecayPerDay drains the recency component; it floors at zero
	// once a posting is about 33 days old
	recencyDecayPerDay = 0.3
)

// defaultPreferredJobTypes applies when the candidate declared no preference
var defaultPreferredJobTypes = []string{"CDI", "Stage"}

// BaseScorer is the five-component weighted scorer: skills (50), location
// (20), remote (10), recency (10) and job-type preference (10).
type BaseScorer struct {
	now func() time.Time
}

// BaseOption customizes a BaseScorer
type BaseOption func(*BaseScorer)

// WithNow overrides the recency reference time (used in tests)
func WithNow(now func() time.Time) BaseOption {
	return func(s *BaseScorer) {
		s.now = now
	}
}

// NewBaseScorer creates the base strategy
func NewBaseScorer(opts ...BaseOption) *BaseScorer {
	s := &BaseScorer{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the strategy
func (s *BaseScorer) Name() string { return StrategyBase }

// Score computes the composite match score for one posting. Empty skill
// lists and zero-tag jobs degrade to a zero skill component; the method
// never fails on incomplete candidate data.
func (s *BaseScorer) Score(job types.JobPosting, candidateSkills []string, candidateLocation string, profile *types.CandidateProfile) types.MatchResult {
	skillScore, matched := skillComponent(job, candidateSkills, profile)
	breakdown := types.ScoreBreakdown{
		Skill:    skillScore,
		Location: locationComponent(job.Location, candidateLocation),
		Remote:   remoteComponent(job.Remote),
		Recency:  s.recencyComponent(job.PostedAt),
		JobType:  jobTypeComponent(job.JobType, profile),
	}
	raw := breakdown.Skill + breakdown.Location + breakdown.Remote + breakdown.Recency + breakdown.JobType
	return finalize(StrategyBase, job.ID, raw, matched, breakdown)
}

// skillComponent scores job tags against candidate skills and returns the
// matching tags. When the profile declares proficiency levels, each matched
// tag contributes that skill's multiplier instead of 1, so a strong
// candidate can saturate the component.
func skillComponent(job types.JobPosting, candidateSkills []string, profile *types.CandidateProfile) (float64, []string) {
	matched := make([]string, 0, len(job.Tags))
	numTags := len(job.Tags)
	if numTags == 0 || len(candidateSkills) == 0 {
		return 0, matched
	}

	useProficiency := profile != nil && len(profile.SkillsWithProficiency) > 0
	contribution := 0.0
	for _, tag := range job.Tags {
		skill, ok := skills.AnyMatch(candidateSkills, tag)
		if !ok {
			continue
		}
		matched = append(matched, tag)
		if useProficiency {
			contribution += skills.ProficiencyMultiplier(profile.ProficiencyFor(skill))
		} else {
			contribution++
		}
	}
	return contribution / float64(numTags) * weightSkill, matched
}

// locationComponent awards the full weight when either location contains the
// other, case-insensitively ("Paris" matches "Paris, France").
func locationComponent(jobLocation, candidateLocation string) float64 {
	j := strings.ToLower(strings.TrimSpace(jobLocation))
	c := strings.ToLower(strings.TrimSpace(candidateLocation))
	if j == "" || c == "" {
		return 0
	}
	if strings.Contains(j, c) || strings.Contains(c, j) {
		return weightLocation
	}
	return 0
}

func remoteComponent(remote bool) float64 {
	if remote {
		return weightRemote
	}
	return 0
}

// recencyComponent decays linearly with posting age and floors at zero.
// Postings dated in the future count as posted today.
func (s *BaseScorer) recencyComponent(postedAt time.Time) float64 {
	if postedAt.IsZero() {
		return 0
	}
	days := s.now().Sub(postedAt).Hours() / 24
	if days < 0 {
		days = 0
	}
	return math.Max(0, weightRecency-days*recencyDecayPerDay)
}

// jobTypeComponent awards the full weight when the posting's type is in the
// candidate's preferred set (default {"CDI", "Stage"} when undeclared).
func jobTypeComponent(jobType string, profile *types.CandidateProfile) float64 {
	preferred := defaultPreferredJobTypes
	if profile != nil && len(profile.PreferredJobTypes) > 0 {
		preferred = profile.PreferredJobTypes
	}
	for _, p := range preferred {
		if strings.EqualFold(p, jobType) {
			return weightJobType
		}
	}
	return 0
}
