package repository

import (
	"brightminds_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

// ActiveUnclaimed returns every active achievement the child has not
// unlocked yet, so re-runs never see already-unlocked rows.
func (r *AchievementRepository) ActiveUnclaimed(childID uint) ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Where("is_active = ?", true).
		Where("id NOT IN (?)",
			r.DB.Model(&model.ChildAchievement{}).Select("achievement_id").Where("child_id = ?", childID)).
		Find(&achievements).Error
	return achievements, err
}

// Unlock creates the unlock row for (child, achievement). The unique index
// plus DO NOTHING turns a concurrent duplicate into a benign no-op; the
// returned bool reports whether this call created the row.
func (r *AchievementRepository) Unlock(childID, achievementID uint) (bool, error) {
	unlock := model.ChildAchievement{
		ChildID:       childID,
		AchievementID: achievementID,
		UnlockedAt:    time.Now(),
	}
	res := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&unlock)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *AchievementRepository) UnlockedByChild(childID uint) ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Joins("JOIN child_achievements ON child_achievements.achievement_id = achievements.id").
		Where("child_achievements.child_id = ?", childID).
		Order("child_achievements.unlocked_at DESC").
		Find(&achievements).Error
	return achievements, err
}

func (r *AchievementRepository) ListActive() ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Where("is_active = ?", true).Order("requirement_value").Find(&achievements).Error
	return achievements, err
}
