package service

import (
	"brightminds_backend/internal/model"
	"brightminds_backend/internal/repository"
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	leaderboardKey = "brightminds:leaderboard"
	leaderboardTTL = 5 * time.Minute
)

type DashboardService struct {
	ChildRepo       *repository.ChildRepository
	SessionRepo     *repository.PlaySessionRepository
	AchievementRepo *repository.AchievementRepository
	Redis           *redis.Client
	Logger          *zap.Logger
}

func NewDashboardService(
	childRepo *repository.ChildRepository,
	sessionRepo *repository.PlaySessionRepository,
	achievementRepo *repository.AchievementRepository,
	rdb *redis.Client,
	log *zap.Logger,
) *DashboardService {
	return &DashboardService{
		ChildRepo:       childRepo,
		SessionRepo:     sessionRepo,
		AchievementRepo: achievementRepo,
		Redis:           rdb,
		Logger:          log,
	}
}

type ChildDashboard struct {
	Stats          model.ChildStats    `json:"stats"`
	NextLevelXP    int                 `json:"nextLevelXp"`
	RecentActivity []model.PlaySession `json:"recentActivity"`
	Achievements   []model.Achievement `json:"achievements"`
}

type LeaderboardEntry struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	XP    int    `json:"xp"`
	Level int    `json:"level"`
}

func (s *DashboardService) GetChildDashboard(childID uint) (*ChildDashboard, error) {
	stats, err := s.ChildRepo.GetStats(childID)
	if err != nil {
		return nil, err
	}

	recent, err := s.SessionRepo.RecentByChild(childID, 10)
	if err != nil {
		return nil, err
	}

	achievements, err := s.AchievementRepo.UnlockedByChild(childID)
	if err != nil {
		return nil, err
	}

	return &ChildDashboard{
		Stats:          *stats,
		NextLevelXP:    NextLevelXP(stats.TotalXP),
		RecentActivity: recent,
		Achievements:   achievements,
	}, nil
}

// GetLeaderboard returns the top children by XP, cached in Redis for a few
// minutes; a cache miss or error falls back to the database.
func (s *DashboardService) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	ctx := context.Background()
	if cached, err := s.Redis.Get(ctx, leaderboardKey).Result(); err == nil {
		var entries []LeaderboardEntry
		if err := json.Unmarshal([]byte(cached), &entries); err == nil && len(entries) >= limit {
			return entries[:limit], nil
		}
	}

	children, err := s.ChildRepo.FindTopByXP(50)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(children))
	for i, child := range children {
		entries[i] = LeaderboardEntry{
			Rank:  i + 1,
			Name:  child.Name,
			XP:    child.TotalXP,
			Level: child.CurrentLevel,
		}
	}

	if payload, err := json.Marshal(entries); err == nil {
		if err := s.Redis.Set(ctx, leaderboardKey, payload, leaderboardTTL).Err(); err != nil {
			s.Logger.Warn("leaderboard cache write failed", zap.Error(err))
		}
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
