package service

import (
	"brightminds_backend/internal/util"
	"time"
)

// StreakTracker advances the per-child daily activity streak. It runs once
// per completed activity in the caller's context; there is no background
// job, so streak state only ever changes in response to an activity. The
// read-then-write here relies on the coordinator serializing per-child
// updates.
type StreakTracker struct {
	Children ChildStore
	Clock    util.Clock
}

func NewStreakTracker(children ChildStore, clock util.Clock) *StreakTracker {
	return &StreakTracker{Children: children, Clock: clock}
}

// Touch applies the streak state machine for today and returns the streak
// length afterwards:
//
//	never active            -> 1
//	last active today       -> unchanged (same-day re-entry is a no-op)
//	last active yesterday   -> +1
//	anything else           -> reset to 1 (gaps and future dates alike)
func (t *StreakTracker) Touch(childID uint) (int, error) {
	state, err := t.Children.GetStreakState(childID)
	if err != nil {
		return 0, err
	}

	today := t.Clock.Today()

	if state.LastActivityDate == nil {
		if err := t.Children.SetStreakState(childID, 1, today); err != nil {
			return 0, err
		}
		return 1, nil
	}

	last := *state.LastActivityDate
	switch {
	case sameDay(last, today):
		return state.StreakDays, nil
	case sameDay(last.AddDate(0, 0, 1), today):
		streak := state.StreakDays + 1
		if err := t.Children.SetStreakState(childID, streak, today); err != nil {
			return 0, err
		}
		return streak, nil
	default:
		if err := t.Children.SetStreakState(childID, 1, today); err != nil {
			return 0, err
		}
		return 1, nil
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
