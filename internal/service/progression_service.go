package service

import (
	"brightminds_backend/internal/model"
	"brightminds_backend/internal/util"
	"brightminds_backend/pkg/monitoring"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ActivityEvent is one finished activity entering the progression pipeline.
// XP and Coins are the already-tiered reward amounts. For games SessionID
// points at the open session started earlier; quizzes and stories leave it
// zero and carry an optional client AttemptKey instead. Completed false
// marks a session the child abandoned: it is still finalized and rewarded
// once, but stays out of the completion aggregates.
type ActivityEvent struct {
	ChildID         uint
	Kind            model.ActivityKind
	ActivityID      uint
	SessionID       uint
	AttemptKey      string
	Score           *float64
	XP              int
	Coins           int
	DurationSeconds int
	Completed       bool
	StartTime       time.Time
	EndTime         time.Time
}

// CompletionResult is what the child-facing caller gets back after the
// pipeline ran.
type CompletionResult struct {
	Rewards              Reward               `json:"rewards"`
	Stats                model.ChildStats     `json:"stats"`
	LeveledUp            bool                 `json:"leveledUp"`
	UnlockedAchievements []model.Achievement  `json:"unlockedAchievements"`
	CompletedGoals       []model.LearningGoal `json:"completedGoals"`
}

// ProgressionService turns one activity-completion event into durable state:
// activity record, XP/coin grant with level derivation, streak, goal
// progress, achievements, notifications, in that order. The reward grant is
// the commit point: anything failing after it is logged and reported but
// never rolls the grant back.
type ProgressionService struct {
	Children     ChildStore
	Activities   ActivityStore
	Streaks      *StreakTracker
	Goals        *GoalProgressTracker
	Achievements *AchievementEvaluator
	Notifier     NotificationSink
	Logger       *zap.Logger

	// Per-child serialization for the read-then-write steps (streak, goal
	// progress). The stores keep counter updates atomic on their own; this
	// lock only protects the conditional writes. A fixed stripe set keeps
	// memory bounded regardless of how many children pass through.
	locks [childLockStripes]sync.Mutex
}

const childLockStripes = 64

func NewProgressionService(
	children ChildStore,
	activities ActivityStore,
	streaks *StreakTracker,
	goals *GoalProgressTracker,
	achievements *AchievementEvaluator,
	notifier NotificationSink,
	log *zap.Logger,
) *ProgressionService {
	return &ProgressionService{
		Children:     children,
		Activities:   activities,
		Streaks:      streaks,
		Goals:        goals,
		Achievements: achievements,
		Notifier:     notifier,
		Logger:       log,
	}
}

func (s *ProgressionService) childLock(childID uint) *sync.Mutex {
	return &s.locks[childID%childLockStripes]
}

// ApplyReward is the reward ledger: it adds the validated deltas atomically,
// derives the level from the new total and raises the stored level when it
// lags. Returns the fresh stats and whether the child leveled up.
func (s *ProgressionService) ApplyReward(childID uint, xpDelta, coinDelta int) (*model.ChildStats, bool, error) {
	if xpDelta < 0 || coinDelta < 0 {
		return nil, false, util.ErrNegativeDelta
	}

	stats, err := s.Children.ApplyDelta(childID, xpDelta, coinDelta)
	if err != nil {
		return nil, false, err
	}

	leveledUp := false
	if newLevel := LevelForXP(stats.TotalXP); newLevel > stats.Level {
		if err := s.Children.UpdateLevel(childID, newLevel); err != nil {
			return nil, false, err
		}
		leveledUp = true
		stats.Level = newLevel
	}

	return stats, leveledUp, nil
}

// Complete runs the whole pipeline for one event. The activity record and
// the reward grant must both succeed; every later step is secondary and its
// failure is logged while the already-granted reward stands.
func (s *ProgressionService) Complete(ev ActivityEvent) (*CompletionResult, error) {
	if ev.XP < 0 || ev.Coins < 0 {
		return nil, util.ErrNegativeDelta
	}

	lock := s.childLock(ev.ChildID)
	lock.Lock()
	defer lock.Unlock()

	// Reject unknown children before the play session row exists; a failed
	// grant must leave no durable record behind.
	if _, err := s.Children.GetStats(ev.ChildID); err != nil {
		return nil, err
	}

	if err := s.recordActivity(ev); err != nil {
		return nil, err
	}

	stats, leveledUp, err := s.ApplyReward(ev.ChildID, ev.XP, ev.Coins)
	if err != nil {
		return nil, err
	}

	result := &CompletionResult{
		Rewards:              Reward{XP: ev.XP, Coins: ev.Coins},
		LeveledUp:            leveledUp,
		UnlockedAchievements: []model.Achievement{},
		CompletedGoals:       []model.LearningGoal{},
	}

	monitoring.RewardsGranted.WithLabelValues(string(ev.Kind)).Inc()

	if streak, err := s.Streaks.Touch(ev.ChildID); err != nil {
		// Stats keep the pre-touch streak; the reward already stands.
		s.Logger.Error("streak update failed after reward grant",
			zap.Uint("childID", ev.ChildID), zap.Error(err))
	} else {
		stats.StreakDays = streak
	}

	if completed, err := s.Goals.Advance(ev.ChildID, ev.Kind, ev.XP, ev.Coins); err != nil {
		s.Logger.Error("goal progress failed after reward grant",
			zap.Uint("childID", ev.ChildID), zap.Error(err))
	} else {
		result.CompletedGoals = completed
	}

	if unlocked, err := s.Achievements.Check(ev.ChildID); err != nil {
		s.Logger.Error("achievement check failed after reward grant",
			zap.Uint("childID", ev.ChildID), zap.Error(err))
	} else {
		result.UnlockedAchievements = unlocked
	}

	result.Stats = *stats

	if leveledUp {
		if err := s.Notifier.Notify(stats.ParentID, model.NotifyLevelUp,
			"Level up!",
			fmt.Sprintf("%s just reached level %d.", stats.Name, stats.Level),
		); err != nil {
			s.Logger.Warn("level-up notification failed",
				zap.Uint("childID", ev.ChildID), zap.Error(err))
		}
	}

	return result, nil
}

// recordActivity persists the play session row for the event before any reward
// is granted, so a duplicate submission is rejected while state is still
// untouched.
func (s *ProgressionService) recordActivity(ev ActivityEvent) error {
	if ev.SessionID > 0 {
		return s.Activities.Finalize(ev.SessionID, ev.Score, ev.XP, ev.Coins, ev.DurationSeconds, ev.Completed, ev.EndTime)
	}

	rec := &model.PlaySession{
		ChildID:         ev.ChildID,
		ActivityType:    ev.Kind,
		ActivityID:      ev.ActivityID,
		StartTime:       ev.StartTime,
		EndTime:         &ev.EndTime,
		DurationSeconds: ev.DurationSeconds,
		Score:           ev.Score,
		XPEarned:        ev.XP,
		CoinsEarned:     ev.Coins,
		Completed:       ev.Completed,
	}
	if ev.AttemptKey != "" {
		key := ev.AttemptKey
		rec.AttemptKey = &key
	}
	return s.Activities.Record(rec)
}
