package service

import (
	"brightminds_backend/internal/model"
	"brightminds_backend/internal/repository"
	"brightminds_backend/internal/util"
	"time"

	"go.uber.org/zap"
)

// GoalService is the parent-facing goal surface: creating goals, listing
// them, and the lifecycle sweep that expires overdue ones. Progress itself
// is only ever advanced by the GoalProgressTracker.
type GoalService struct {
	GoalRepo  *repository.GoalRepository
	ChildRepo *repository.ChildRepository
	Clock     util.Clock
	Logger    *zap.Logger
}

func NewGoalService(goalRepo *repository.GoalRepository, childRepo *repository.ChildRepository, clock util.Clock, log *zap.Logger) *GoalService {
	return &GoalService{GoalRepo: goalRepo, ChildRepo: childRepo, Clock: clock, Logger: log}
}

type CreateGoalRequest struct {
	ChildID     uint           `json:"childId" binding:"required"`
	Kind        model.GoalKind `json:"kind" binding:"required,oneof=xp_earned coins_earned games_played quizzes_completed total_xp total_coins"`
	Description string         `json:"description" binding:"max=255"`
	TargetValue int            `json:"targetValue" binding:"required"`
	EndDate     time.Time      `json:"endDate"`
}

// CreateGoal creates a goal for one of the parent's own children. The window
// starts today; a missing end date defaults to 30 days out.
func (s *GoalService) CreateGoal(parentID uint, req CreateGoalRequest) (*model.LearningGoal, error) {
	if req.TargetValue <= 0 {
		return nil, util.ErrInvalidTarget
	}

	if _, err := s.ChildRepo.FindByIDAndParent(req.ChildID, parentID); err != nil {
		return nil, err
	}

	today := s.Clock.Today()
	endDate := req.EndDate
	if endDate.IsZero() {
		endDate = today.AddDate(0, 0, 30)
	}

	goal := &model.LearningGoal{
		ChildID:     req.ChildID,
		ParentID:    parentID,
		Kind:        req.Kind,
		Description: req.Description,
		TargetValue: req.TargetValue,
		StartDate:   today,
		EndDate:     endDate,
		Status:      model.GoalActive,
	}

	return goal, s.GoalRepo.Create(goal)
}

func (s *GoalService) GetChildGoals(parentID, childID uint) ([]model.LearningGoal, error) {
	if _, err := s.ChildRepo.FindByIDAndParent(childID, parentID); err != nil {
		return nil, err
	}
	return s.GoalRepo.FindByChild(childID)
}

// ExpireOverdueGoals is the lifecycle sweep: active goals past their end
// date become expired (terminal). Invoked from the app's background ticker.
func (s *GoalService) ExpireOverdueGoals() error {
	expired, err := s.GoalRepo.ExpireOverdue(s.Clock.Today())
	if err != nil {
		return err
	}
	if expired > 0 {
		s.Logger.Info("expired overdue goals", zap.Int64("count", expired))
	}
	return nil
}
