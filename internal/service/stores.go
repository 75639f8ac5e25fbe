package service

import (
	"brightminds_backend/internal/model"
	"time"
)

// The progression engine talks to persistence through these contracts, all
// implemented by internal/repository. Keeping the engine on interfaces means
// every mutating operation is pinned to a store-level guarantee (atomic
// delta, guarded update, insert-or-ignore) instead of engine-memory
// read-modify-write, and the whole pipeline is testable without MySQL.

// ChildStore owns the durable child progression row.
type ChildStore interface {
	// ApplyDelta adds the (non-negative) deltas in one atomic statement and
	// returns the fresh totals. Level in the result is the stored level
	// before any catch-up by UpdateLevel.
	ApplyDelta(childID uint, xpDelta, coinDelta int) (*model.ChildStats, error)
	// UpdateLevel raises the stored level; implementations must never let it
	// decrease.
	UpdateLevel(childID uint, level int) error
	GetStats(childID uint) (*model.ChildStats, error)
	GetStreakState(childID uint) (*model.StreakState, error)
	SetStreakState(childID uint, streakDays int, date time.Time) error
}

// ActivityStore owns play session records.
type ActivityStore interface {
	// Record inserts a completed attempt; a duplicate attempt key returns
	// util.ErrDuplicateSubmission.
	Record(rec *model.PlaySession) error
	// Finalize writes the outcome of an open session exactly once; a second
	// call returns util.ErrDuplicateSubmission. An abandoned outcome
	// (completed false) still closes the session.
	Finalize(sessionID uint, score *float64, xp, coins, durationSeconds int, completed bool, endTime time.Time) error
	Aggregates(childID uint) (*model.ActivityAggregates, error)
}

type GoalStore interface {
	ActiveGoalsFor(childID uint, today time.Time) ([]model.LearningGoal, error)
	UpdateProgress(goalID uint, progress int, status model.GoalStatus) error
}

type AchievementStore interface {
	ActiveUnclaimed(childID uint) ([]model.Achievement, error)
	// Unlock reports whether this call created the unlock row; a duplicate
	// is (false, nil), never an error.
	Unlock(childID, achievementID uint) (bool, error)
}

// NotificationSink delivers parent-facing messages. Delivery is best-effort;
// callers log and move on when it fails.
type NotificationSink interface {
	Notify(parentID uint, kind model.NotificationKind, title, message string) error
}
