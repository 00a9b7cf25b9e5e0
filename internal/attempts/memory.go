package attempts

import (
	"context"
	"sync"

	"github.com/jonathan/skillmatch/internal/types"
)

// MemoryRepository is an in-memory attempt log keyed by user id,
// used in tests as a stand-in for the persistent backends.
// Appends for the same user are serialized by a per-repository lock;
// listed slices are copies, so callers can never mutate stored history.
type MemoryRepository struct {
	mu     sync.RWMutex
	byUser map[string][]types.Attempt
}

// NewMemoryRepository creates an empty in-memory attempt log
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byUser: make(map[string][]types.Attempt)}
}

// Append adds an attempt to the user's log
func (r *MemoryRepository) Append(_ context.Context, attempt types.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[attempt.UserID] = append(r.byUser[attempt.UserID], attempt)
	return nil
}

// ListByUser returns the user's attempts in insertion order
func (r *MemoryRepository) ListByUser(_ context.Context, userID string) ([]types.Attempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.byUser[userID]
	attempts := make([]types.Attempt, len(stored))
	copy(attempts, stored)
	return attempts, nil
}

// ListByUserAndTest returns the user's attempts for one test in insertion order
func (r *MemoryRepository) ListByUserAndTest(_ context.Context, userID, testID string) ([]types.Attempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var attempts []types.Attempt
	for _, attempt := range r.byUser[userID] {
		if attempt.TestID == testID {
			attempts = append(attempts, attempt)
		}
	}
	return attempts, nil
}
