package model

type NotificationKind string

const (
	NotifyLevelUp       NotificationKind = "level_up"
	NotifyAchievement   NotificationKind = "achievement"
	NotifyGoalCompleted NotificationKind = "goal_completed"
)

// swagger:model Notification
type Notification struct {
	BaseModel
	ParentID uint             `gorm:"index;type:bigint unsigned;not null" json:"parentId"`
	Kind     NotificationKind `gorm:"type:enum('level_up','achievement','goal_completed');not null" json:"kind"`
	Title    string           `gorm:"size:255;not null" json:"title"`
	Message  string           `gorm:"type:text" json:"message"`
	IsRead   bool             `gorm:"default:false" json:"isRead"`
}

func (Notification) TableName() string {
	return "notifications"
}
