package service

import (
	"brightminds_backend/internal/model"
	"brightminds_backend/internal/repository"
	"time"
)

type StoryService struct {
	StoryRepo   *repository.StoryRepository
	Progression *ProgressionService
}

func NewStoryService(storyRepo *repository.StoryRepository, progression *ProgressionService) *StoryService {
	return &StoryService{StoryRepo: storyRepo, Progression: progression}
}

func (s *StoryService) ListStories() ([]model.Story, error) {
	return s.StoryRepo.ListActive()
}

func (s *StoryService) GetStory(storyID uint) (*model.Story, error) {
	return s.StoryRepo.FindActiveByID(storyID)
}

// CompleteStory pays the story's base reward; stories have no performance
// tier.
func (s *StoryService) CompleteStory(childID, storyID uint, attemptKey string) (*CompletionResult, error) {
	story, err := s.StoryRepo.FindActiveByID(storyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return s.Progression.Complete(ActivityEvent{
		ChildID:         childID,
		Kind:            model.ActivityStory,
		ActivityID:      story.ID,
		AttemptKey:      attemptKey,
		XP:              story.XPReward,
		Coins:           story.CoinReward,
		DurationSeconds: 60,
		Completed:       true,
		StartTime:       now.Add(-time.Minute),
		EndTime:         now,
	})
}
