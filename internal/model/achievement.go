package model

import "time"

// RequirementKind is the closed set of statistics an achievement can gate on.
// Adding a kind means adding a case to AchievementEvaluator's dispatch.
type RequirementKind string

const (
	ReqActivitiesCompleted RequirementKind = "activities_completed"
	ReqGamesPlayed         RequirementKind = "games_played"
	ReqPerfectQuiz         RequirementKind = "perfect_quiz"
	ReqTotalXP             RequirementKind = "total_xp"
	ReqLevelReached        RequirementKind = "level_reached"
	ReqStreakDays          RequirementKind = "streak_days"
)

// swagger:model Achievement
type Achievement struct {
	BaseModel
	Name             string          `gorm:"size:100;not null" json:"name"`
	Description      string          `gorm:"size:255" json:"description"`
	Icon             string          `gorm:"size:255" json:"icon"`
	RequirementKind  RequirementKind `gorm:"type:enum('activities_completed','games_played','perfect_quiz','total_xp','level_reached','streak_days');not null" json:"requirementKind"`
	RequirementValue int             `gorm:"not null" json:"requirementValue"`
	IsActive         bool            `gorm:"default:true" json:"isActive"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// ChildAchievement is the unlock row; (child, achievement) is unique so a
// concurrent double-check cannot create a second one.
// swagger:model ChildAchievement
type ChildAchievement struct {
	BaseModel
	ChildID       uint      `gorm:"uniqueIndex:idx_child_achievement;type:bigint unsigned;not null" json:"childId"`
	AchievementID uint      `gorm:"uniqueIndex:idx_child_achievement;type:bigint unsigned;not null" json:"achievementId"`
	UnlockedAt    time.Time `gorm:"not null" json:"unlockedAt"`
}

func (ChildAchievement) TableName() string {
	return "child_achievements"
}
