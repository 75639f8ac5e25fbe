package model

import "time"

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalExpired   GoalStatus = "expired"
)

// GoalKind is the closed set of metrics a parent can set a target on.
// xp_earned/total_xp and coins_earned/total_coins are distinct labels for the
// same delta; both spellings come in from the parent UI.
type GoalKind string

const (
	GoalXPEarned         GoalKind = "xp_earned"
	GoalCoinsEarned      GoalKind = "coins_earned"
	GoalGamesPlayed      GoalKind = "games_played"
	GoalQuizzesCompleted GoalKind = "quizzes_completed"
	GoalTotalXP          GoalKind = "total_xp"
	GoalTotalCoins       GoalKind = "total_coins"
)

// LearningGoal is a parent-defined, time-bounded target. CurrentProgress is
// capped at TargetValue; status is terminal once it leaves active.
// swagger:model LearningGoal
type LearningGoal struct {
	BaseModel
	ChildID         uint       `gorm:"index;type:bigint unsigned;not null" json:"childId"`
	ParentID        uint       `gorm:"index;type:bigint unsigned;not null" json:"parentId"`
	Kind            GoalKind   `gorm:"type:enum('xp_earned','coins_earned','games_played','quizzes_completed','total_xp','total_coins');not null" json:"kind"`
	Description     string     `gorm:"size:255" json:"description"`
	TargetValue     int        `gorm:"not null" json:"targetValue"`
	CurrentProgress int        `gorm:"default:0" json:"currentProgress"`
	StartDate       time.Time  `gorm:"type:date;not null" json:"startDate"`
	EndDate         time.Time  `gorm:"type:date;not null" json:"endDate"`
	Status          GoalStatus `gorm:"type:enum('active','completed','expired');default:'active'" json:"status"`
}

func (LearningGoal) TableName() string {
	return "learning_goals"
}
