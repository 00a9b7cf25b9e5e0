// Package attempts provides the append-only attempt store and its
// swappable repository backends.
package attempts

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/skillmatch/internal/types"
)

// recentAttemptsLimit caps the recent-attempt list in aggregate stats
const recentAttemptsLimit = 5

// Repository is the minimal persistence contract for the attempt log.
// Implementations must be append-only: Append never overwrites an existing
// record, and a failed Append must leave the stored history unchanged.
// ListByUser returns attempts in insertion order.
type Repository interface {
	Append(ctx context.Context, attempt types.Attempt) error
	ListByUser(ctx context.Context, userID string) ([]types.Attempt, error)
	ListByUserAndTest(ctx context.Context, userID, testID string) ([]types.Attempt, error)
}

// Store coordinates attempt recording and derives aggregate views from the log
type Store struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
	newID  func() uuid.UUID
}

// StoreOption customizes a Store
type StoreOption func(*Store)

// WithClock overrides the timestamp source (used in tests)
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator overrides attempt id generation (used in tests)
func WithIDGenerator(newID func() uuid.UUID) StoreOption {
	return func(s *Store) {
		s.newID = newID
	}
}

// NewStore creates a Store over the given repository.
// A nil logger defaults to a no-op logger.
func NewStore(repo Repository, logger *zap.Logger, opts ...StoreOption) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordAttempt assigns an id and completion timestamp to a graded result and
// appends it to the user's log. On repository failure the error is returned
// and no partial record becomes visible.
func (s *Store) RecordAttempt(ctx context.Context, testID, userID string, result types.Result, answers map[string]int, timeSpentSeconds int) (types.Attempt, error) {
	// Copy the answer map so later caller mutation cannot alter the stored record
	answersCopy := make(map[string]int, len(answers))
	for questionID, selected := range answers {
		answersCopy[questionID] = selected
	}

	attempt := types.Attempt{
		ID:               s.newID(),
		TestID:           testID,
		UserID:           userID,
		Answers:          answersCopy,
		Result:           result,
		TimeSpentSeconds: timeSpentSeconds,
		CompletedAt:      s.now(),
	}

	if err := s.repo.Append(ctx, attempt); err != nil {
		s.logger.Error("recording attempt",
			zap.String("test_id", testID),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return types.Attempt{}, fmt.Errorf("failed to record attempt for test %s: %w", testID, err)
	}

	s.logger.Debug("recorded attempt",
		zap.String("attempt_id", attempt.ID.String()),
		zap.String("test_id", testID),
		zap.String("user_id", userID),
		zap.Int("score", result.Score),
		zap.Bool("passed", result.Passed),
	)
	return attempt, nil
}

// ListAttempts returns the user's full attempt history in insertion order
func (s *Store) ListAttempts(ctx context.Context, userID string) ([]types.Attempt, error) {
	attempts, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts for user %s: %w", userID, err)
	}
	return attempts, nil
}

// AttemptsForTest returns the user's attempts for one test in insertion order
func (s *Store) AttemptsForTest(ctx context.Context, userID, testID string) ([]types.Attempt, error) {
	attempts, err := s.repo.ListByUserAndTest(ctx, userID, testID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts for user %s test %s: %w", userID, testID, err)
	}
	return attempts, nil
}

// LatestAttempt returns the user's most recent attempt for a test by
// insertion order, or nil when the user has not taken the test.
func (s *Store) LatestAttempt(ctx context.Context, userID, testID string) (*types.Attempt, error) {
	attempts, err := s.AttemptsForTest(ctx, userID, testID)
	if err != nil {
		return nil, err
	}
	if len(attempts) == 0 {
		return nil, nil
	}
	latest := attempts[len(attempts)-1]
	return &latest, nil
}

// BestAttempt returns the user's highest-scoring attempt for a test.
// Score ties are broken by the earliest attempt. Returns nil when the user
// has not taken the test.
func (s *Store) BestAttempt(ctx context.Context, userID, testID string) (*types.Attempt, error) {
	attempts, err := s.AttemptsForTest(ctx, userID, testID)
	if err != nil {
		return nil, err
	}
	if len(attempts) == 0 {
		return nil, nil
	}
	best := attempts[0]
	for _, attempt := range attempts[1:] {
		if attempt.Result.Score > best.Result.Score {
			best = attempt
		}
	}
	return &best, nil
}

// AggregateStats derives summary statistics over the user's attempt history.
// A user with no attempts gets zero-valued stats, not an error.
func (s *Store) AggregateStats(ctx context.Context, userID string) (types.AttemptStats, error) {
	attempts, err := s.ListAttempts(ctx, userID)
	if err != nil {
		return types.AttemptStats{}, err
	}

	stats := types.AttemptStats{TotalTests: len(attempts)}
	if len(attempts) == 0 {
		return stats, nil
	}

	scoreSum := 0
	for _, attempt := range attempts {
		if attempt.Result.Passed {
			stats.PassedTests++
		}
		scoreSum += attempt.Result.Score
		stats.TotalTimeSpent += attempt.TimeSpentSeconds
	}
	stats.AverageScore = int(math.Floor(float64(scoreSum)/float64(len(attempts)) + 0.5))

	recent := make([]types.Attempt, len(attempts))
	copy(recent, attempts)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CompletedAt.After(recent[j].CompletedAt)
	})
	if len(recent) > recentAttemptsLimit {
		recent = recent[:recentAttemptsLimit]
	}
	stats.RecentAttempts = recent

	return stats, nil
}
