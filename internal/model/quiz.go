package model

// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Category     string         `gorm:"size:50" json:"category"`
	PassingScore float64        `gorm:"default:60" json:"passingScore"`
	XPReward     int            `gorm:"default:20" json:"xpReward"`
	CoinReward   int            `gorm:"default:10" json:"coinReward"`
	IsActive     bool           `gorm:"default:true" json:"isActive"`
	Questions    []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model QuizQuestion
type QuizQuestion struct {
	BaseModel
	QuizID        uint         `gorm:"index;type:bigint unsigned;not null" json:"quizId"`
	QuestionText  string       `gorm:"type:text;not null" json:"questionText"`
	CorrectAnswer string       `gorm:"size:255;not null" json:"-"`
	Points        int          `gorm:"default:10" json:"points"`
	Explanation   string       `gorm:"type:text" json:"explanation,omitempty"`
	OrderNum      int          `gorm:"default:0" json:"orderNum"`
	Options       []QuizOption `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// swagger:model QuizOption
type QuizOption struct {
	BaseModel
	QuestionID uint   `gorm:"index;type:bigint unsigned;not null" json:"questionId"`
	OptionText string `gorm:"size:255;not null" json:"optionText"`
	IsCorrect  bool   `gorm:"default:false" json:"-"`
	OrderNum   int    `gorm:"default:0" json:"orderNum"`
}

func (QuizOption) TableName() string {
	return "quiz_options"
}
