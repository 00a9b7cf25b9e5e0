package grading

import (
	"testing"

	"github.com/jonathan/skillmatch/internal/types"
	"github.com/stretchr/testify/assert"
)

func questionBank(n int) []types.Question {
	questions := make([]types.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, types.Question{
			ID:                 string(rune('a' + i)),
			Prompt:             "statement",
			Options:            []string{"True", "False", "Cannot Say"},
			CorrectAnswerIndex: 0,
		})
	}
	return questions
}

func TestGrade_ThreeOfFourCorrect(t *testing.T) {
	questions := questionBank(4)
	answers := map[string]int{"a": 0, "b": 0, "c": 0, "d": 2}

	result := Grade(answers, questions)

	assert.Equal(t, 75, result.Score)
	assert.Equal(t, 3, result.CorrectAnswers)
	assert.Equal(t, 4, result.TotalQuestions)
	assert.True(t, result.Passed)
}

func TestGrade_AllCorrect(t *testing.T) {
	questions := questionBank(3)
	answers := map[string]int{"a": 0, "b": 0, "c": 0}

	result := Grade(answers, questions)

	assert.Equal(t, 100, result.Score)
	assert.True(t, result.Passed)
}

func TestGrade_RoundsHalfUp(t *testing.T) {
	// 1/8 = 12.5% rounds up to 13
	questions := questionBank(8)
	result := Grade(map[string]int{"a": 0}, questions)
	assert.Equal(t, 13, result.Score)

	// 2/3 = 66.67% rounds to 67, still failing
	result = Grade(map[string]int{"a": 0, "b": 0}, questionBank(3))
	assert.Equal(t, 67, result.Score)
	assert.False(t, result.Passed)
}

func TestGrade_NilAnswersZeroCredit(t *testing.T) {
	questions := questionBank(4)

	result := Grade(nil, questions)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.CorrectAnswers)
	assert.Equal(t, 4, result.TotalQuestions)
	assert.False(t, result.Passed)
}

func TestGrade_UnknownQuestionIDsIgnored(t *testing.T) {
	questions := questionBank(2)
	answers := map[string]int{"zz": 0, "a": 0}

	result := Grade(answers, questions)

	assert.Equal(t, 1, result.CorrectAnswers)
	assert.Equal(t, 50, result.Score)
}

func TestGrade_EmptyQuestionBank(t *testing.T) {
	result := Grade(map[string]int{"a": 0}, nil)

	assert.Equal(t, types.Result{}, result)
	assert.False(t, result.Passed)
}

func TestGrade_ExactThresholdPasses(t *testing.T) {
	// 7/10 = 70 passes at the default threshold
	questions := questionBank(10)
	answers := make(map[string]int)
	for i := 0; i < 7; i++ {
		answers[string(rune('a'+i))] = 0
	}

	result := Grade(answers, questions)

	assert.Equal(t, 70, result.Score)
	assert.True(t, result.Passed)
}

func TestGrade_CustomThreshold(t *testing.T) {
	questions := questionBank(2)
	answers := map[string]int{"a": 0}

	result := Grade(answers, questions, WithPassThreshold(50))

	assert.Equal(t, 50, result.Score)
	assert.True(t, result.Passed)
}

func TestGrade_Deterministic(t *testing.T) {
	questions := questionBank(5)
	answers := map[string]int{"a": 0, "b": 1, "c": 0}

	first := Grade(answers, questions)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Grade(answers, questions))
	}
}
