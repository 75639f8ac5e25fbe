package model

// swagger:model Game
type Game struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"size:50" json:"category"`
	MinAge      int    `gorm:"default:0" json:"minAge"`
	XPReward    int    `gorm:"default:10" json:"xpReward"`
	CoinReward  int    `gorm:"default:5" json:"coinReward"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}

func (Game) TableName() string {
	return "games"
}
