package service

import (
	"brightminds_backend/internal/model"
	"brightminds_backend/pkg/monitoring"
	"fmt"

	"go.uber.org/zap"
)

// AchievementEvaluator unlocks achievements whose requirement the child now
// meets. Check is idempotent: the eligibility query already excludes
// unlocked rows, and the store's Unlock is insert-or-ignore, so re-runs and
// concurrent runs can neither duplicate a row nor re-notify.
type AchievementEvaluator struct {
	Achievements AchievementStore
	Activities   ActivityStore
	Children     ChildStore
	Notifier     NotificationSink
	Logger       *zap.Logger
}

func NewAchievementEvaluator(achievements AchievementStore, activities ActivityStore, children ChildStore, notifier NotificationSink, log *zap.Logger) *AchievementEvaluator {
	return &AchievementEvaluator{
		Achievements: achievements,
		Activities:   activities,
		Children:     children,
		Notifier:     notifier,
		Logger:       log,
	}
}

// Check evaluates every active achievement the child has not unlocked and
// returns the ones unlocked by this call.
func (e *AchievementEvaluator) Check(childID uint) ([]model.Achievement, error) {
	stats, err := e.Children.GetStats(childID)
	if err != nil {
		return nil, err
	}
	agg, err := e.Activities.Aggregates(childID)
	if err != nil {
		return nil, err
	}

	candidates, err := e.Achievements.ActiveUnclaimed(childID)
	if err != nil {
		return nil, err
	}

	var unlocked []model.Achievement
	for _, achievement := range candidates {
		if !requirementMet(achievement, stats, agg) {
			continue
		}

		created, err := e.Achievements.Unlock(childID, achievement.ID)
		if err != nil {
			return unlocked, err
		}
		if !created {
			// Another request unlocked it first; nothing to announce.
			continue
		}

		monitoring.AchievementsUnlocked.Inc()
		unlocked = append(unlocked, achievement)

		if err := e.Notifier.Notify(stats.ParentID, model.NotifyAchievement,
			"Achievement unlocked!",
			fmt.Sprintf("%s earned the %q badge.", stats.Name, achievement.Name),
		); err != nil {
			e.Logger.Warn("achievement notification failed",
				zap.Uint("achievementID", achievement.ID), zap.Error(err))
		}
	}

	return unlocked, nil
}

// requirementMet dispatches over the closed requirement-kind enum; each kind
// reads exactly one aggregate and compares with >=.
func requirementMet(a model.Achievement, stats *model.ChildStats, agg *model.ActivityAggregates) bool {
	switch a.RequirementKind {
	case model.ReqActivitiesCompleted:
		return agg.TotalActivities >= a.RequirementValue
	case model.ReqGamesPlayed:
		return agg.GamesPlayed >= a.RequirementValue
	case model.ReqPerfectQuiz:
		return agg.PerfectQuizzes >= a.RequirementValue
	case model.ReqTotalXP:
		return stats.TotalXP >= a.RequirementValue
	case model.ReqLevelReached:
		return stats.Level >= a.RequirementValue
	case model.ReqStreakDays:
		return stats.StreakDays >= a.RequirementValue
	default:
		return false
	}
}
