package model

import "time"

// ChildStats is the reward-relevant snapshot of a child row.
type ChildStats struct {
	ChildID    uint   `json:"childId"`
	ParentID   uint   `json:"-"`
	Name       string `json:"name"`
	TotalXP    int    `json:"totalXp"`
	Level      int    `json:"level"`
	Coins      int    `json:"coins"`
	StreakDays int    `json:"streakDays"`
}

// StreakState is what the streak tracker reads and writes.
type StreakState struct {
	LastActivityDate *time.Time
	StreakDays       int
}

// ActivityAggregates are the per-child completion counts the achievement
// evaluator compares against thresholds.
type ActivityAggregates struct {
	TotalActivities int
	GamesPlayed     int
	PerfectQuizzes  int
}
