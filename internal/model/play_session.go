package model

import "time"

type ActivityKind string

const (
	ActivityGame  ActivityKind = "game"
	ActivityQuiz  ActivityKind = "quiz"
	ActivityStory ActivityKind = "story"
)

// PlaySession is one activity attempt. Games create it open at start and
// finalize it exactly once; quizzes and stories insert it already completed.
// AttemptKey is the client idempotency key, unique when present.
// swagger:model PlaySession
type PlaySession struct {
	BaseModel
	ChildID         uint         `gorm:"index;type:bigint unsigned;not null" json:"childId"`
	ActivityType    ActivityKind `gorm:"type:enum('game','quiz','story');not null" json:"activityType"`
	ActivityID      uint         `gorm:"index;type:bigint unsigned;not null" json:"activityId"`
	AttemptKey      *string      `gorm:"size:64;uniqueIndex" json:"attemptKey,omitempty"`
	StartTime       time.Time    `gorm:"not null" json:"startTime"`
	EndTime         *time.Time   `json:"endTime"`
	DurationSeconds int          `gorm:"default:0" json:"durationSeconds"`
	Score           *float64     `json:"score"`
	XPEarned        int          `gorm:"default:0" json:"xpEarned"`
	CoinsEarned     int          `gorm:"default:0" json:"coinsEarned"`
	Completed       bool         `gorm:"default:false" json:"completed"`
}

func (PlaySession) TableName() string {
	return "play_sessions"
}
