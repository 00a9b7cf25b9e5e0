// Package ranking turns a job catalog into an ordered recommendation list
// for one candidate.
package ranking

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skillmatch/internal/matching"
	"github.com/jonathan/skillmatch/internal/types"
)

// maxScoringConcurrency bounds parallel scoring of large catalogs
const maxScoringConcurrency = 8

// Ranker scores and orders job postings with a configured match strategy
type Ranker struct {
	strategy matching.Strategy
	logger   *zap.Logger
}

// NewRanker creates a Ranker. A nil logger defaults to a no-op logger.
func NewRanker(strategy matching.Strategy, logger *zap.Logger) *Ranker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ranker{strategy: strategy, logger: logger}
}

// scoredJob pairs a result with the ordering keys not carried on it
type scoredJob struct {
	result   types.MatchResult
	posting  types.JobPosting
	computed bool
}

// Rank filters the catalog to active postings, scores each against the
// candidate, sorts and truncates to limit (limit <= 0 means no truncation).
//
// Ordering is total: score descending, then matched-skill count descending,
// then posting date descending, then job id ascending. The final key makes
// full ties deterministic.
//
// Scoring runs concurrently with bounded parallelism. When the context is
// cancelled mid-way, Rank returns the results computed so far rather than
// failing; incomplete catalogs are logged.
func (r *Ranker) Rank(ctx context.Context, jobs []types.JobPosting, candidateSkills []string, candidateLocation string, profile *types.CandidateProfile, limit int) []types.MatchResult {
	active := make([]types.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if job.IsActive() {
			active = append(active, job)
		}
	}

	scored := make([]scoredJob, len(active))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxScoringConcurrency)
	for i, job := range active {
		i, job := i, job
		group.Go(func() error {
			select {
			case <-groupCtx.Done():
				return nil
			default:
			}
			scored[i] = scoredJob{
				result:   r.strategy.Score(job, candidateSkills, candidateLocation, profile),
				posting:  job,
				computed: true,
			}
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes them
	_ = group.Wait()

	results := make([]scoredJob, 0, len(scored))
	for _, s := range scored {
		if s.computed {
			results = append(results, s)
		}
	}
	if len(results) < len(active) {
		r.logger.Warn("ranking interrupted, returning partial results",
			zap.Int("scored", len(results)),
			zap.Int("active_jobs", len(active)),
			zap.Error(ctx.Err()),
		)
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.result.Score != b.result.Score {
			return a.result.Score > b.result.Score
		}
		if len(a.result.MatchedSkills) != len(b.result.MatchedSkills) {
			return len(a.result.MatchedSkills) > len(b.result.MatchedSkills)
		}
		if !a.posting.PostedAt.Equal(b.posting.PostedAt) {
			return a.posting.PostedAt.After(b.posting.PostedAt)
		}
		return a.posting.ID < b.posting.ID
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	ranked := make([]types.MatchResult, 0, len(results))
	for _, s := range results {
		ranked = append(ranked, s.result)
	}
	return ranked
}
