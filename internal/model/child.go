package model

import "time"

// ChildProfile holds the durable progression state for one child. TotalXP and
// Coins only ever grow through atomic deltas; CurrentLevel is derived from
// TotalXP and never decreases. LastActivityDate is written only by the streak
// tracker.
// swagger:model ChildProfile
type ChildProfile struct {
	BaseModel
	ParentID         uint       `gorm:"index;type:bigint unsigned;not null" json:"parentId"`
	Name             string     `gorm:"size:100;not null" json:"name"`
	Age              int        `gorm:"default:0" json:"age"`
	AvatarURL        string     `gorm:"size:255" json:"avatarUrl"`
	TotalXP          int        `gorm:"default:0" json:"totalXp"`
	CurrentLevel     int        `gorm:"default:1" json:"currentLevel"`
	Coins            int        `gorm:"default:0" json:"coins"`
	StreakDays       int        `gorm:"default:0" json:"streakDays"`
	LastActivityDate *time.Time `gorm:"type:date" json:"lastActivityDate"`
}

func (ChildProfile) TableName() string {
	return "children"
}
