// Package grading implements the pure assessment grading engine.
package grading

import (
	"math"

	"github.com/jonathan/skillmatch/internal/types"
)

// Option customizes grading behavior
type Option func(*options)

type options struct {
	passThreshold int
}

// WithPassThreshold overrides the default passing score (70)
func WithPassThreshold(threshold int) Option {
	return func(o *options) {
		o.passThreshold = threshold
	}
}

// Grade scores a completed test submission against its question bank.
//
// A question counts as correct when the submitted option index equals the
// question's correct answer index. The score is the percentage of correct
// answers rounded half-up; passing requires meeting the threshold.
//
// Grade never fails: a nil answer map yields a zero-credit result and an
// empty question bank yields a zero score that is not passing. Identical
// inputs always produce identical results.
func Grade(answers map[string]int, questions []types.Question, opts ...Option) types.Result {
	o := options{passThreshold: types.PassThreshold}
	for _, opt := range opts {
		opt(&o)
	}

	total := len(questions)
	if total == 0 {
		return types.Result{}
	}

	correct := 0
	if answers != nil {
		for _, q := range questions {
			if selected, ok := answers[q.ID]; ok && selected == q.CorrectAnswerIndex {
				correct++
			}
		}
	}

	score := roundHalfUp(float64(correct) / float64(total) * 100)
	return types.Result{
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: total,
		Passed:         score >= o.passThreshold,
	}
}

// roundHalfUp rounds to the nearest integer with .5 rounding away from zero
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
