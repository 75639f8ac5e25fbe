package service

import (
	"brightminds_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func activeGoal(id uint, kind model.GoalKind, target, progress int, end time.Time) model.LearningGoal {
	return model.LearningGoal{
		BaseModel:       model.BaseModel{ID: id},
		ChildID:         1,
		ParentID:        10,
		Kind:            kind,
		Description:     "test goal",
		TargetValue:     target,
		CurrentProgress: progress,
		EndDate:         end,
		Status:          model.GoalActive,
	}
}

func TestGoalProgressXPKindAdvancesByAward(t *testing.T) {
	today := date(2026, time.March, 10)
	store := newFakeGoalStore(activeGoal(1, model.GoalXPEarned, 100, 30, today))
	sink := &fakeSink{}
	tracker := NewGoalProgressTracker(store, fixedClock{today: today}, sink, zap.NewNop())

	completed, err := tracker.Advance(1, model.ActivityQuiz, 25, 12)

	require.NoError(t, err)
	assert.Empty(t, completed)
	assert.Equal(t, 55, store.goals[1].CurrentProgress)
	assert.Equal(t, model.GoalActive, store.goals[1].Status)
}

func TestGoalProgressCapsAtTargetAndCompletes(t *testing.T) {
	today := date(2026, time.March, 10)
	store := newFakeGoalStore(activeGoal(1, model.GoalXPEarned, 100, 90, today))
	sink := &fakeSink{}
	tracker := NewGoalProgressTracker(store, fixedClock{today: today}, sink, zap.NewNop())

	completed, err := tracker.Advance(1, model.ActivityGame, 20, 10)

	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, 100, store.goals[1].CurrentProgress)
	assert.Equal(t, model.GoalCompleted, store.goals[1].Status)

	notes := sink.byKind(model.NotifyGoalCompleted)
	require.Len(t, notes, 1)
	assert.Equal(t, uint(10), notes[0].parentID)
}

func TestGoalProgressCountKindsFilterByActivity(t *testing.T) {
	today := date(2026, time.March, 10)
	store := newFakeGoalStore(
		activeGoal(1, model.GoalGamesPlayed, 5, 0, today),
		activeGoal(2, model.GoalQuizzesCompleted, 5, 0, today),
	)
	tracker := NewGoalProgressTracker(store, fixedClock{today: today}, &fakeSink{}, zap.NewNop())

	_, err := tracker.Advance(1, model.ActivityGame, 10, 5)
	require.NoError(t, err)

	assert.Equal(t, 1, store.goals[1].CurrentProgress)
	assert.Equal(t, 0, store.goals[2].CurrentProgress)
}

func TestGoalProgressCoinKindAdvancesByCoins(t *testing.T) {
	today := date(2026, time.March, 10)
	store := newFakeGoalStore(activeGoal(1, model.GoalCoinsEarned, 50, 0, today))
	tracker := NewGoalProgressTracker(store, fixedClock{today: today}, &fakeSink{}, zap.NewNop())

	_, err := tracker.Advance(1, model.ActivityStory, 10, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, store.goals[1].CurrentProgress)
}

func TestGoalProgressSkipsOutOfWindowGoals(t *testing.T) {
	today := date(2026, time.March, 10)
	yesterday := date(2026, time.March, 9)
	store := newFakeGoalStore(activeGoal(1, model.GoalXPEarned, 100, 40, yesterday))
	tracker := NewGoalProgressTracker(store, fixedClock{today: today}, &fakeSink{}, zap.NewNop())

	completed, err := tracker.Advance(1, model.ActivityQuiz, 30, 10)

	require.NoError(t, err)
	assert.Empty(t, completed)
	// The overdue goal is untouched; flipping it to expired is the sweep's
	// job, not the tracker's.
	assert.Equal(t, 40, store.goals[1].CurrentProgress)
	assert.Equal(t, model.GoalActive, store.goals[1].Status)
}

func TestGoalProgressCompletedGoalNeverReopens(t *testing.T) {
	today := date(2026, time.March, 10)
	goal := activeGoal(1, model.GoalXPEarned, 100, 100, today)
	goal.Status = model.GoalCompleted
	store := newFakeGoalStore(goal)
	sink := &fakeSink{}
	tracker := NewGoalProgressTracker(store, fixedClock{today: today}, sink, zap.NewNop())

	completed, err := tracker.Advance(1, model.ActivityQuiz, 50, 25)

	require.NoError(t, err)
	assert.Empty(t, completed)
	assert.Empty(t, sink.entries)
}

func TestGoalProgressNotificationFailureDoesNotFail(t *testing.T) {
	today := date(2026, time.March, 10)
	store := newFakeGoalStore(activeGoal(1, model.GoalXPEarned, 10, 5, today))
	sink := &fakeSink{err: assert.AnError}
	tracker := NewGoalProgressTracker(store, fixedClock{today: today}, sink, zap.NewNop())

	completed, err := tracker.Advance(1, model.ActivityQuiz, 10, 5)

	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, model.GoalCompleted, store.goals[1].Status)
}
