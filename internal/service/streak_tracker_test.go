package service

import (
	"brightminds_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackerWith(t *testing.T, lastActive *time.Time, streakDays int, today time.Time) (*StreakTracker, *fakeChildStore) {
	t.Helper()
	store := newFakeChildStore(model.ChildStats{ChildID: 1, ParentID: 10, Name: "Ada", Level: 1})
	store.streaks[1] = &model.StreakState{LastActivityDate: lastActive, StreakDays: streakDays}
	return NewStreakTracker(store, fixedClock{today: today}), store
}

func TestStreakFirstActivityStartsAtOne(t *testing.T) {
	today := date(2026, time.March, 10)
	tracker, store := trackerWith(t, nil, 0, today)

	streak, err := tracker.Touch(1)

	require.NoError(t, err)
	assert.Equal(t, 1, streak)
	require.NotNil(t, store.streaks[1].LastActivityDate)
	assert.True(t, store.streaks[1].LastActivityDate.Equal(today))
}

func TestStreakSameDayIsNoOp(t *testing.T) {
	today := date(2026, time.March, 10)
	tracker, store := trackerWith(t, &today, 4, today)

	streak, err := tracker.Touch(1)

	require.NoError(t, err)
	assert.Equal(t, 4, streak)
	assert.Equal(t, 4, store.streaks[1].StreakDays)
}

func TestStreakConsecutiveDayIncrements(t *testing.T) {
	today := date(2026, time.March, 10)
	yesterday := date(2026, time.March, 9)
	tracker, store := trackerWith(t, &yesterday, 3, today)

	streak, err := tracker.Touch(1)

	require.NoError(t, err)
	assert.Equal(t, 4, streak)
	assert.True(t, store.streaks[1].LastActivityDate.Equal(today))
}

func TestStreakGapResetsToOne(t *testing.T) {
	today := date(2026, time.March, 10)
	sixDaysAgo := date(2026, time.March, 4)
	tracker, _ := trackerWith(t, &sixDaysAgo, 9, today)

	streak, err := tracker.Touch(1)

	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestStreakFutureDateResetsToOne(t *testing.T) {
	// A clock rolled backwards must not freeze the streak forever.
	today := date(2026, time.March, 10)
	tomorrow := date(2026, time.March, 11)
	tracker, _ := trackerWith(t, &tomorrow, 5, today)

	streak, err := tracker.Touch(1)

	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestStreakMonthBoundary(t *testing.T) {
	today := date(2026, time.March, 1)
	lastDayOfFeb := date(2026, time.February, 28)
	tracker, _ := trackerWith(t, &lastDayOfFeb, 6, today)

	streak, err := tracker.Touch(1)

	require.NoError(t, err)
	assert.Equal(t, 7, streak)
}
