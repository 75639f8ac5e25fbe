package service

import (
	"brightminds_backend/internal/model"
	"brightminds_backend/internal/repository"
)

// AchievementService is the read side of achievements; unlocking happens
// only inside the progression pipeline.
type AchievementService struct {
	Repo *repository.AchievementRepository
}

func NewAchievementService(repo *repository.AchievementRepository) *AchievementService {
	return &AchievementService{Repo: repo}
}

func (s *AchievementService) ListAll() ([]model.Achievement, error) {
	return s.Repo.ListActive()
}

type AchievementProgress struct {
	All      []model.Achievement `json:"all"`
	Unlocked []model.Achievement `json:"unlocked"`
}

func (s *AchievementService) ForChild(childID uint) (*AchievementProgress, error) {
	all, err := s.Repo.ListActive()
	if err != nil {
		return nil, err
	}
	unlocked, err := s.Repo.UnlockedByChild(childID)
	if err != nil {
		return nil, err
	}
	return &AchievementProgress{All: all, Unlocked: unlocked}, nil
}
