package database

import (
	"brightminds_backend/internal/config"
	"brightminds_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.ChildProfile{},
		&model.Game{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizOption{},
		&model.Story{},
		&model.PlaySession{},
		&model.Achievement{},
		&model.ChildAchievement{},
		&model.LearningGoal{},
		&model.Notification{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedContent(db)

	return db, nil
}

// seedContent inserts a starter catalog so a fresh install is playable.
// Each block only runs when its table is empty.
func seedContent(db *gorm.DB) {
	var count int64

	db.Model(&model.Achievement{}).Count(&count)
	if count == 0 {
		defaults := []model.Achievement{
			{Name: "First Steps", Description: "Complete your first activity", Icon: "🌟", RequirementKind: model.ReqActivitiesCompleted, RequirementValue: 1, IsActive: true},
			{Name: "Busy Bee", Description: "Complete 10 activities", Icon: "🐝", RequirementKind: model.ReqActivitiesCompleted, RequirementValue: 10, IsActive: true},
			{Name: "Game Explorer", Description: "Play 5 games", Icon: "🎮", RequirementKind: model.ReqGamesPlayed, RequirementValue: 5, IsActive: true},
			{Name: "Quiz Whiz", Description: "Get a perfect quiz score", Icon: "🧠", RequirementKind: model.ReqPerfectQuiz, RequirementValue: 1, IsActive: true},
			{Name: "Rising Star", Description: "Earn 500 XP", Icon: "⭐", RequirementKind: model.ReqTotalXP, RequirementValue: 500, IsActive: true},
			{Name: "Level 5 Hero", Description: "Reach level 5", Icon: "🏅", RequirementKind: model.ReqLevelReached, RequirementValue: 5, IsActive: true},
			{Name: "Week Warrior", Description: "Keep a 7-day streak", Icon: "🔥", RequirementKind: model.ReqStreakDays, RequirementValue: 7, IsActive: true},
		}
		for i := range defaults {
			db.Create(&defaults[i])
		}
	}

	db.Model(&model.Game{}).Count(&count)
	if count == 0 {
		defaults := []model.Game{
			{Title: "Shape Matcher", Description: "Match the shapes before time runs out", Category: "logic", MinAge: 4, XPReward: 10, CoinReward: 5, IsActive: true},
			{Title: "Number Hop", Description: "Hop along the number line", Category: "math", MinAge: 5, XPReward: 15, CoinReward: 8, IsActive: true},
			{Title: "Word Garden", Description: "Grow flowers by spelling words", Category: "reading", MinAge: 6, XPReward: 20, CoinReward: 10, IsActive: true},
		}
		for i := range defaults {
			db.Create(&defaults[i])
		}
	}

	db.Model(&model.Story{}).Count(&count)
	if count == 0 {
		defaults := []model.Story{
			{Title: "The Brave Little Cloud", Content: "Once upon a time...", AgeGroup: "4-6", XPReward: 10, CoinReward: 5, IsActive: true},
			{Title: "Milo and the Moon Kite", Content: "Milo loved windy nights...", AgeGroup: "6-8", XPReward: 15, CoinReward: 8, IsActive: true},
		}
		for i := range defaults {
			db.Create(&defaults[i])
		}
	}

	db.Model(&model.Quiz{}).Count(&count)
	if count == 0 {
		quiz := model.Quiz{
			Title:        "Animal Friends",
			Description:  "How well do you know your animals?",
			Category:     "science",
			PassingScore: 60,
			XPReward:     20,
			CoinReward:   10,
			IsActive:     true,
		}
		db.Create(&quiz)

		questions := []model.QuizQuestion{
			{QuizID: quiz.ID, QuestionText: "Which animal says 'moo'?", CorrectAnswer: "Cow", Points: 10, Explanation: "Cows moo!", OrderNum: 1},
			{QuizID: quiz.ID, QuestionText: "Which animal has a long trunk?", CorrectAnswer: "Elephant", Points: 10, Explanation: "Elephants use their trunk to drink and grab.", OrderNum: 2},
			{QuizID: quiz.ID, QuestionText: "Which animal loves carrots?", CorrectAnswer: "Rabbit", Points: 10, Explanation: "Rabbits nibble carrots.", OrderNum: 3},
		}
		for i := range questions {
			db.Create(&questions[i])
			answers := []string{"Cow", "Elephant", "Rabbit", "Duck"}
			for j, text := range answers {
				db.Create(&model.QuizOption{
					QuestionID: questions[i].ID,
					OptionText: text,
					IsCorrect:  text == questions[i].CorrectAnswer,
					OrderNum:   j + 1,
				})
			}
		}
	}
}
