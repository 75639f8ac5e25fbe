package repository

import (
	"brightminds_backend/internal/model"
	"brightminds_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

// Catalog repositories cover the activity content children play: games,
// quizzes and stories.

type GameRepository struct {
	DB *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{DB: db}
}

func (r *GameRepository) ListActive() ([]model.Game, error) {
	var games []model.Game
	err := r.DB.Where("is_active = ?", true).Order("id").Find(&games).Error
	return games, err
}

func (r *GameRepository) FindActiveByID(id uint) (*model.Game, error) {
	var game model.Game
	err := r.DB.Where("id = ? AND is_active = ?", id, true).First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrGameNotFound
	}
	return &game, err
}

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) ListActive() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("is_active = ?", true).Order("id").Find(&quizzes).Error
	return quizzes, err
}

// FindActiveByID loads the quiz with its questions and options, ordered the
// way they are presented.
func (r *QuizRepository) FindActiveByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Where("id = ? AND is_active = ?", id, true).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num, id")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num, id")
		}).
		First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	return &quiz, err
}

type StoryRepository struct {
	DB *gorm.DB
}

func NewStoryRepository(db *gorm.DB) *StoryRepository {
	return &StoryRepository{DB: db}
}

func (r *StoryRepository) ListActive() ([]model.Story, error) {
	var stories []model.Story
	err := r.DB.Where("is_active = ?", true).Order("id").Find(&stories).Error
	return stories, err
}

func (r *StoryRepository) FindActiveByID(id uint) (*model.Story, error) {
	var story model.Story
	err := r.DB.Where("id = ? AND is_active = ?", id, true).First(&story).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStoryNotFound
	}
	return &story, err
}
