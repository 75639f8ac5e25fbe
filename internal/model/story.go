package model

// swagger:model Story
type Story struct {
	BaseModel
	Title      string `gorm:"size:255;not null" json:"title"`
	Content    string `gorm:"type:text" json:"content"`
	AgeGroup   string `gorm:"size:20" json:"ageGroup"`
	CoverURL   string `gorm:"size:255" json:"coverUrl"`
	XPReward   int    `gorm:"default:10" json:"xpReward"`
	CoinReward int    `gorm:"default:5" json:"coinReward"`
	IsActive   bool   `gorm:"default:true" json:"isActive"`
}

func (Story) TableName() string {
	return "stories"
}
