package repository

import (
	"brightminds_backend/internal/model"
	"brightminds_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(goal *model.LearningGoal) error {
	return r.DB.Create(goal).Error
}

func (r *GoalRepository) FindByID(id uint) (*model.LearningGoal, error) {
	var goal model.LearningGoal
	err := r.DB.First(&goal, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrGoalNotFound
	}
	return &goal, err
}

func (r *GoalRepository) FindByChild(childID uint) ([]model.LearningGoal, error) {
	var goals []model.LearningGoal
	err := r.DB.Where("child_id = ?", childID).Order("end_date").Find(&goals).Error
	return goals, err
}

// ActiveGoalsFor returns the goals the progress tracker may advance: still
// active and not past their end date.
func (r *GoalRepository) ActiveGoalsFor(childID uint, today time.Time) ([]model.LearningGoal, error) {
	var goals []model.LearningGoal
	err := r.DB.Where("child_id = ? AND status = ? AND end_date >= ?", childID, model.GoalActive, today).
		Order("end_date").
		Find(&goals).Error
	return goals, err
}

func (r *GoalRepository) UpdateProgress(goalID uint, progress int, status model.GoalStatus) error {
	return r.DB.Model(&model.LearningGoal{}).
		Where("id = ?", goalID).
		Updates(map[string]interface{}{
			"current_progress": progress,
			"status":           status,
		}).Error
}

// ExpireOverdue flips active goals whose window has closed. Runs from the
// background sweep, never from the progress tracker.
func (r *GoalRepository) ExpireOverdue(today time.Time) (int64, error) {
	res := r.DB.Model(&model.LearningGoal{}).
		Where("status = ? AND end_date < ?", model.GoalActive, today).
		Update("status", model.GoalExpired)
	return res.RowsAffected, res.Error
}
