package service

import (
	"brightminds_backend/internal/model"
	"brightminds_backend/internal/repository"
	"time"
)

type QuizService struct {
	QuizRepo    *repository.QuizRepository
	Progression *ProgressionService
}

func NewQuizService(quizRepo *repository.QuizRepository, progression *ProgressionService) *QuizService {
	return &QuizService{QuizRepo: quizRepo, Progression: progression}
}

type SubmitQuizRequest struct {
	QuizID           uint            `json:"quizId" binding:"required"`
	Answers          map[uint]string `json:"answers" binding:"required"`
	TimeSpentSeconds int             `json:"timeSpentSeconds"`
	// AttemptKey lets a retried request be recognized instead of rewarded
	// twice. Clients send a fresh UUID per attempt.
	AttemptKey string `json:"attemptKey"`
}

type SubmitQuizResult struct {
	Score          float64              `json:"score"`
	Passed         bool                 `json:"passed"`
	CorrectCount   int                  `json:"correctCount"`
	TotalQuestions int                  `json:"totalQuestions"`
	Results        []QuestionResult     `json:"results"`
	Rewards        Reward               `json:"rewards"`
	Stats          model.ChildStats     `json:"stats"`
	LeveledUp      bool                 `json:"leveledUp"`
	Unlocked       []model.Achievement  `json:"unlockedAchievements"`
	CompletedGoals []model.LearningGoal `json:"completedGoals"`
}

func (s *QuizService) ListQuizzes() ([]model.Quiz, error) {
	return s.QuizRepo.ListActive()
}

func (s *QuizService) GetQuiz(quizID uint) (*model.Quiz, error) {
	return s.QuizRepo.FindActiveByID(quizID)
}

// SubmitQuiz grades the answers, tiers the reward from the percentage, and
// pushes the completion through the progression pipeline.
func (s *QuizService) SubmitQuiz(childID uint, req SubmitQuizRequest) (*SubmitQuizResult, error) {
	quiz, err := s.QuizRepo.FindActiveByID(req.QuizID)
	if err != nil {
		return nil, err
	}

	score := ScoreQuiz(quiz.Questions, req.Answers, quiz.PassingScore)
	reward := QuizReward(quiz.XPReward, quiz.CoinReward, score.Percentage, quiz.PassingScore)

	now := time.Now()
	percentage := score.Percentage
	completion, err := s.Progression.Complete(ActivityEvent{
		ChildID:         childID,
		Kind:            model.ActivityQuiz,
		ActivityID:      quiz.ID,
		AttemptKey:      req.AttemptKey,
		Score:           &percentage,
		XP:              reward.XP,
		Coins:           reward.Coins,
		DurationSeconds: req.TimeSpentSeconds,
		Completed:       true,
		StartTime:       now.Add(-time.Duration(req.TimeSpentSeconds) * time.Second),
		EndTime:         now,
	})
	if err != nil {
		return nil, err
	}

	return &SubmitQuizResult{
		Score:          score.Percentage,
		Passed:         score.Passed,
		CorrectCount:   score.CorrectCount,
		TotalQuestions: score.TotalQuestions,
		Results:        score.Results,
		Rewards:        completion.Rewards,
		Stats:          completion.Stats,
		LeveledUp:      completion.LeveledUp,
		Unlocked:       completion.UnlockedAchievements,
		CompletedGoals: completion.CompletedGoals,
	}, nil
}
