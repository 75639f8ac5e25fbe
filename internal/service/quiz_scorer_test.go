package service

import (
	"brightminds_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionSet() []model.QuizQuestion {
	return []model.QuizQuestion{
		{BaseModel: model.BaseModel{ID: 1}, QuestionText: "Which animal says 'moo'?", CorrectAnswer: "Cow", Points: 10},
		{BaseModel: model.BaseModel{ID: 2}, QuestionText: "Which animal has a long trunk?", CorrectAnswer: "Elephant", Points: 10},
		{BaseModel: model.BaseModel{ID: 3}, QuestionText: "Which animal loves carrots?", CorrectAnswer: "Rabbit", Points: 20},
	}
}

func TestScoreQuizPerfect(t *testing.T) {
	score := ScoreQuiz(questionSet(), map[uint]string{1: "Cow", 2: "Elephant", 3: "Rabbit"}, 60)

	assert.Equal(t, 100.0, score.Percentage)
	assert.True(t, score.Passed)
	assert.Equal(t, 3, score.CorrectCount)
	assert.Equal(t, 3, score.TotalQuestions)
	assert.Equal(t, 40, score.EarnedPoints)
}

func TestScoreQuizMatchingIsTrimmedAndCaseInsensitive(t *testing.T) {
	score := ScoreQuiz(questionSet(), map[uint]string{1: "  cow ", 2: "ELEPHANT", 3: "rabbit"}, 60)

	assert.Equal(t, 100.0, score.Percentage)
	assert.Equal(t, 3, score.CorrectCount)
}

func TestScoreQuizPartial(t *testing.T) {
	// 20 of 40 points: the 20-point question decides the pass.
	score := ScoreQuiz(questionSet(), map[uint]string{3: "Rabbit", 1: "Dog"}, 60)

	assert.Equal(t, 50.0, score.Percentage)
	assert.False(t, score.Passed)
	assert.Equal(t, 1, score.CorrectCount)
	assert.Equal(t, 20, score.EarnedPoints)
}

func TestScoreQuizPercentageRoundsToTwoDecimals(t *testing.T) {
	questions := []model.QuizQuestion{
		{BaseModel: model.BaseModel{ID: 1}, CorrectAnswer: "a", Points: 1},
		{BaseModel: model.BaseModel{ID: 2}, CorrectAnswer: "b", Points: 1},
		{BaseModel: model.BaseModel{ID: 3}, CorrectAnswer: "c", Points: 1},
	}

	score := ScoreQuiz(questions, map[uint]string{1: "a"}, 30)

	assert.Equal(t, 33.33, score.Percentage)
	assert.True(t, score.Passed)
}

func TestScoreQuizUnansweredQuestionsAreWrong(t *testing.T) {
	score := ScoreQuiz(questionSet(), map[uint]string{}, 60)

	assert.Equal(t, 0.0, score.Percentage)
	assert.False(t, score.Passed)
	require.Len(t, score.Results, 3)
	for _, r := range score.Results {
		assert.Nil(t, r.UserAnswer)
		assert.False(t, r.IsCorrect)
		assert.Zero(t, r.Points)
	}
}

func TestScoreQuizNoQuestions(t *testing.T) {
	score := ScoreQuiz(nil, map[uint]string{1: "a"}, 60)

	assert.Equal(t, 0.0, score.Percentage)
	assert.False(t, score.Passed)
	assert.Zero(t, score.TotalQuestions)
}

func TestScoreQuizResultsKeepQuestionOrder(t *testing.T) {
	score := ScoreQuiz(questionSet(), map[uint]string{2: "Elephant"}, 60)

	require.Len(t, score.Results, 3)
	assert.Equal(t, uint(1), score.Results[0].QuestionID)
	assert.Equal(t, uint(2), score.Results[1].QuestionID)
	assert.Equal(t, uint(3), score.Results[2].QuestionID)
	assert.True(t, score.Results[1].IsCorrect)
}
