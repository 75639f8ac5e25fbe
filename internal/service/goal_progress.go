package service

import (
	"brightminds_backend/internal/model"
	"brightminds_backend/internal/util"
	"fmt"

	"go.uber.org/zap"
)

// GoalProgressTracker advances a child's active learning goals after an
// activity. Goals past their end date are skipped here; flipping them to
// expired belongs to the lifecycle sweep in GoalService.
type GoalProgressTracker struct {
	Goals    GoalStore
	Clock    util.Clock
	Notifier NotificationSink
	Logger   *zap.Logger
}

func NewGoalProgressTracker(goals GoalStore, clock util.Clock, notifier NotificationSink, log *zap.Logger) *GoalProgressTracker {
	return &GoalProgressTracker{Goals: goals, Clock: clock, Notifier: notifier, Logger: log}
}

// Advance applies the per-kind progress delta to every active, in-window
// goal and returns the goals completed by this activity. Progress is capped
// at the target; reaching it completes the goal (terminal) and notifies the
// parent who set it.
func (t *GoalProgressTracker) Advance(childID uint, kind model.ActivityKind, xpAwarded, coinsAwarded int) ([]model.LearningGoal, error) {
	goals, err := t.Goals.ActiveGoalsFor(childID, t.Clock.Today())
	if err != nil {
		return nil, err
	}

	var completed []model.LearningGoal
	for _, goal := range goals {
		delta := progressDelta(goal.Kind, kind, xpAwarded, coinsAwarded)
		if delta <= 0 {
			continue
		}

		progress := goal.CurrentProgress + delta
		if progress > goal.TargetValue {
			progress = goal.TargetValue
		}

		status := goal.Status
		if progress >= goal.TargetValue {
			status = model.GoalCompleted
		}

		if err := t.Goals.UpdateProgress(goal.ID, progress, status); err != nil {
			return completed, err
		}

		if status == model.GoalCompleted {
			goal.CurrentProgress = progress
			goal.Status = status
			completed = append(completed, goal)

			if err := t.Notifier.Notify(goal.ParentID, model.NotifyGoalCompleted,
				"Goal completed!",
				fmt.Sprintf("The goal %q was just completed.", goal.Description),
			); err != nil {
				t.Logger.Warn("goal completion notification failed",
					zap.Uint("goalID", goal.ID), zap.Error(err))
			}
		}
	}

	return completed, nil
}

// progressDelta maps a goal kind to its per-activity increment. XP and coin
// kinds advance by the award; count kinds advance by one when the activity
// kind qualifies.
func progressDelta(goalKind model.GoalKind, activity model.ActivityKind, xp, coins int) int {
	switch goalKind {
	case model.GoalXPEarned, model.GoalTotalXP:
		return xp
	case model.GoalCoinsEarned, model.GoalTotalCoins:
		return coins
	case model.GoalGamesPlayed:
		if activity == model.ActivityGame {
			return 1
		}
		return 0
	case model.GoalQuizzesCompleted:
		if activity == model.ActivityQuiz {
			return 1
		}
		return 0
	default:
		return 0
	}
}
