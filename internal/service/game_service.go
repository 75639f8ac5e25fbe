package service

import (
	"brightminds_backend/internal/model"
	"brightminds_backend/internal/repository"
	"time"
)

type GameService struct {
	GameRepo    *repository.GameRepository
	SessionRepo *repository.PlaySessionRepository
	Progression *ProgressionService
}

func NewGameService(gameRepo *repository.GameRepository, sessionRepo *repository.PlaySessionRepository, progression *ProgressionService) *GameService {
	return &GameService{GameRepo: gameRepo, SessionRepo: sessionRepo, Progression: progression}
}

type EndGameRequest struct {
	SessionID uint    `json:"sessionId" binding:"required"`
	Score     float64 `json:"score"`
	// Completed false means the child quit mid-game; the session is still
	// finalized and rewarded but is excluded from completion aggregates.
	Completed *bool `json:"completed"`
}

func (s *GameService) ListGames() ([]model.Game, error) {
	return s.GameRepo.ListActive()
}

func (s *GameService) GetGame(gameID uint) (*model.Game, error) {
	return s.GameRepo.FindActiveByID(gameID)
}

// StartGame opens a play session. The session row doubles as the idempotency
// key for the eventual reward: it can be finalized only once.
func (s *GameService) StartGame(childID, gameID uint) (*model.PlaySession, error) {
	if _, err := s.GameRepo.FindActiveByID(gameID); err != nil {
		return nil, err
	}
	return s.SessionRepo.Start(childID, model.ActivityGame, gameID, time.Now())
}

// EndGame tiers the reward from the score and finalizes the session through
// the progression pipeline. Ending an already-finalized session is rejected
// before any reward moves.
func (s *GameService) EndGame(childID uint, req EndGameRequest) (*CompletionResult, error) {
	session, err := s.SessionRepo.FindByIDAndChild(req.SessionID, childID)
	if err != nil {
		return nil, err
	}

	game, err := s.GameRepo.FindActiveByID(session.ActivityID)
	if err != nil {
		return nil, err
	}

	reward := GameReward(game.XPReward, game.CoinReward, req.Score)
	now := time.Now()
	score := req.Score

	// Omitting the flag counts as a completed run.
	completed := req.Completed == nil || *req.Completed

	return s.Progression.Complete(ActivityEvent{
		ChildID:         childID,
		Kind:            model.ActivityGame,
		ActivityID:      game.ID,
		SessionID:       session.ID,
		Score:           &score,
		XP:              reward.XP,
		Coins:           reward.Coins,
		DurationSeconds: int(now.Sub(session.StartTime).Seconds()),
		Completed:       completed,
		StartTime:       session.StartTime,
		EndTime:         now,
	})
}
