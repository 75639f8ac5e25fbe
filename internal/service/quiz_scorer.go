package service

import (
	"brightminds_backend/internal/model"
	"math"
	"strings"
)

// QuestionResult is the graded outcome for one question.
type QuestionResult struct {
	QuestionID    uint    `json:"questionId"`
	Question      string  `json:"question"`
	UserAnswer    *string `json:"userAnswer"`
	CorrectAnswer string  `json:"correctAnswer"`
	IsCorrect     bool    `json:"isCorrect"`
	Explanation   string  `json:"explanation"`
	Points        int     `json:"points"`
}

// QuizScore is the full grading outcome for one submission.
type QuizScore struct {
	Percentage     float64          `json:"score"`
	Passed         bool             `json:"passed"`
	CorrectCount   int              `json:"correctCount"`
	TotalQuestions int              `json:"totalQuestions"`
	EarnedPoints   int              `json:"earnedPoints"`
	TotalPoints    int              `json:"totalPoints"`
	Results        []QuestionResult `json:"results"`
}

// ScoreQuiz grades a submitted answer map against the question set. Matching
// is exact after trimming whitespace and lowering case; there is no partial
// credit. Pure function: same inputs, same output, no side effects.
func ScoreQuiz(questions []model.QuizQuestion, answers map[uint]string, passingScore float64) *QuizScore {
	score := &QuizScore{
		TotalQuestions: len(questions),
		Results:        make([]QuestionResult, 0, len(questions)),
	}

	for _, q := range questions {
		score.TotalPoints += q.Points

		result := QuestionResult{
			QuestionID:    q.ID,
			Question:      q.QuestionText,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}

		if answer, ok := answers[q.ID]; ok {
			result.UserAnswer = &answer
			if answersMatch(answer, q.CorrectAnswer) {
				result.IsCorrect = true
				result.Points = q.Points
				score.EarnedPoints += q.Points
				score.CorrectCount++
			}
		}

		score.Results = append(score.Results, result)
	}

	if score.TotalPoints > 0 {
		score.Percentage = round2(float64(score.EarnedPoints) / float64(score.TotalPoints) * 100)
	}
	score.Passed = score.Percentage >= passingScore

	return score
}

func answersMatch(submitted, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correct))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
