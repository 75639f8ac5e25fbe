package repository

import (
	"brightminds_backend/internal/model"
	"brightminds_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ChildRepository struct {
	DB *gorm.DB
}

func NewChildRepository(db *gorm.DB) *ChildRepository {
	return &ChildRepository{DB: db}
}

func (r *ChildRepository) Create(child *model.ChildProfile) error {
	return r.DB.Create(child).Error
}

func (r *ChildRepository) FindByID(id uint) (*model.ChildProfile, error) {
	var child model.ChildProfile
	err := r.DB.First(&child, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrChildNotFound
	}
	return &child, err
}

func (r *ChildRepository) FindByIDAndParent(id, parentID uint) (*model.ChildProfile, error) {
	var child model.ChildProfile
	err := r.DB.Where("id = ? AND parent_id = ?", id, parentID).First(&child).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrChildNotFound
	}
	return &child, err
}

func (r *ChildRepository) FindByParent(parentID uint) ([]model.ChildProfile, error) {
	var children []model.ChildProfile
	err := r.DB.Where("parent_id = ?", parentID).Order("created_at").Find(&children).Error
	return children, err
}

func (r *ChildRepository) Update(child *model.ChildProfile) error {
	return r.DB.Save(child).Error
}

// ApplyDelta adds xp and coins in a single UPDATE so concurrent grants for
// the same child never lose each other, then reloads the fresh totals.
func (r *ChildRepository) ApplyDelta(childID uint, xpDelta, coinDelta int) (*model.ChildStats, error) {
	res := r.DB.Model(&model.ChildProfile{}).
		Where("id = ?", childID).
		Updates(map[string]interface{}{
			"total_xp": gorm.Expr("total_xp + ?", xpDelta),
			"coins":    gorm.Expr("coins + ?", coinDelta),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, util.ErrChildNotFound
	}

	return r.GetStats(childID)
}

// UpdateLevel raises the stored level. The guard keeps it monotonic even if
// two requests race on the same child.
func (r *ChildRepository) UpdateLevel(childID uint, level int) error {
	return r.DB.Model(&model.ChildProfile{}).
		Where("id = ? AND current_level < ?", childID, level).
		Update("current_level", level).
		Error
}

func (r *ChildRepository) GetStats(childID uint) (*model.ChildStats, error) {
	child, err := r.FindByID(childID)
	if err != nil {
		return nil, err
	}
	return &model.ChildStats{
		ChildID:    child.ID,
		ParentID:   child.ParentID,
		Name:       child.Name,
		TotalXP:    child.TotalXP,
		Level:      child.CurrentLevel,
		Coins:      child.Coins,
		StreakDays: child.StreakDays,
	}, nil
}

func (r *ChildRepository) GetStreakState(childID uint) (*model.StreakState, error) {
	child, err := r.FindByID(childID)
	if err != nil {
		return nil, err
	}
	return &model.StreakState{
		LastActivityDate: child.LastActivityDate,
		StreakDays:       child.StreakDays,
	}, nil
}

func (r *ChildRepository) SetStreakState(childID uint, streakDays int, date time.Time) error {
	return r.DB.Model(&model.ChildProfile{}).
		Where("id = ?", childID).
		Updates(map[string]interface{}{
			"streak_days":        streakDays,
			"last_activity_date": date,
		}).Error
}

func (r *ChildRepository) FindTopByXP(limit int) ([]model.ChildProfile, error) {
	var children []model.ChildProfile
	err := r.DB.Order("total_xp DESC").Limit(limit).Find(&children).Error
	return children, err
}
