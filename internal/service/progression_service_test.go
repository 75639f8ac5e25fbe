package service

import (
	"brightminds_backend/internal/model"
	"brightminds_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type pipelineFixture struct {
	children     *fakeChildStore
	activities   *fakeActivityStore
	goals        *fakeGoalStore
	achievements *fakeAchievementStore
	sink         *fakeSink
	svc          *ProgressionService
}

func newPipeline(stats model.ChildStats, today time.Time, badges ...model.Achievement) *pipelineFixture {
	f := &pipelineFixture{
		children:     newFakeChildStore(stats),
		activities:   newFakeActivityStore(),
		goals:        newFakeGoalStore(),
		achievements: newFakeAchievementStore(badges...),
		sink:         &fakeSink{},
	}
	clock := fixedClock{today: today}
	f.svc = NewProgressionService(
		f.children,
		f.activities,
		NewStreakTracker(f.children, clock),
		NewGoalProgressTracker(f.goals, clock, f.sink, zap.NewNop()),
		NewAchievementEvaluator(f.achievements, f.activities, f.children, f.sink, zap.NewNop()),
		f.sink,
		zap.NewNop(),
	)
	return f
}

func quizEvent(childID uint, xp, coins int, score float64, attemptKey string) ActivityEvent {
	end := time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)
	return ActivityEvent{
		ChildID:         childID,
		Kind:            model.ActivityQuiz,
		ActivityID:      7,
		AttemptKey:      attemptKey,
		Score:           &score,
		XP:              xp,
		Coins:           coins,
		DurationSeconds: 90,
		Completed:       true,
		StartTime:       end.Add(-90 * time.Second),
		EndTime:         end,
	}
}

func TestCompleteGrantsRewardAndRecordsActivity(t *testing.T) {
	today := date(2026, time.March, 10)
	f := newPipeline(model.ChildStats{ChildID: 1, ParentID: 10, Name: "Ada", TotalXP: 40, Level: 1, Coins: 12}, today)

	result, err := f.svc.Complete(quizEvent(1, 30, 16, 100, "k1"))

	require.NoError(t, err)
	assert.Equal(t, Reward{XP: 30, Coins: 16}, result.Rewards)
	assert.Equal(t, 70, result.Stats.TotalXP)
	assert.Equal(t, 28, result.Stats.Coins)
	assert.Equal(t, 1, result.Stats.Level)
	assert.False(t, result.LeveledUp)
	assert.Equal(t, 1, result.Stats.StreakDays)

	require.Len(t, f.activities.records, 1)
	rec := f.activities.records[0]
	assert.True(t, rec.Completed)
	assert.Equal(t, 30, rec.XPEarned)
	assert.Equal(t, model.ActivityQuiz, rec.ActivityType)
}

func TestCompleteLevelUpCrossingThreshold(t *testing.T) {
	// 980 XP is level 10; a perfect quiz with doubled base reward lands on
	// 1010 XP, level 11.
	today := date(2026, time.March, 10)
	f := newPipeline(
		model.ChildStats{ChildID: 1, ParentID: 10, Name: "Ada", TotalXP: 980, Level: 10},
		today,
		badge(1, model.ReqLevelReached, 11),
		badge(2, model.ReqLevelReached, 12),
	)

	result, err := f.svc.Complete(quizEvent(1, 30, 16, 100, "k1"))

	require.NoError(t, err)
	assert.Equal(t, 1010, result.Stats.TotalXP)
	assert.Equal(t, 11, result.Stats.Level)
	assert.True(t, result.LeveledUp)

	require.Len(t, result.UnlockedAchievements, 1)
	assert.Equal(t, uint(1), result.UnlockedAchievements[0].ID)

	levelNotes := f.sink.byKind(model.NotifyLevelUp)
	require.Len(t, levelNotes, 1)
	assert.Equal(t, uint(10), levelNotes[0].parentID)
	assert.Len(t, f.sink.byKind(model.NotifyAchievement), 1)
}

func TestCompleteRewardsAreAdditive(t *testing.T) {
	today := date(2026, time.March, 10)
	f := newPipeline(model.ChildStats{ChildID: 1, ParentID: 10, Name: "Ada", Level: 1}, today)

	_, err := f.svc.Complete(quizEvent(1, 30, 15, 100, "k1"))
	require.NoError(t, err)
	result, err := f.svc.Complete(quizEvent(1, 24, 12, 80, "k2"))
	require.NoError(t, err)

	assert.Equal(t, 54, result.Stats.TotalXP)
	assert.Equal(t, 27, result.Stats.Coins)
	assert.Len(t, f.activities.records, 2)
}

func TestCompleteRejectsNegativeDeltas(t *testing.T) {
	today := date(2026, time.March, 10)
	f := newPipeline(model.ChildStats{ChildID: 1, ParentID: 10, Name: "Ada", TotalXP: 50, Level: 1}, today)

	ev := quizEvent(1, -5, 10, 80, "k1")
	_, err := f.svc.Complete(ev)

	assert.ErrorIs(t, err, util.ErrNegativeDelta)
	assert.Empty(t, f.activities.records)
	stats, _ := f.children.GetStats(1)
	assert.Equal(t, 50, stats.TotalXP)
}

func TestCompleteDuplicateAttemptKeyLeavesStateUntouched(t *testing.T) {
	today := date(2026, time.March, 10)
	f := newPipeline(model.ChildStats{ChildID: 1, ParentID: 10, Name: "Ada", Level: 1}, today)

	_, err := f.svc.Complete(quizEvent(1, 30, 15, 100, "same-key"))
	require.NoError(t, err)

	_, err = f.svc.Complete(quizEvent(1, 30, 15, 100, "same-key"))
	assert.ErrorIs(t, err, util.ErrDuplicateSubmission)

	stats, _ := f.children.GetStats(1)
	assert.Equal(t, 30, stats.TotalXP, "the retry must not grant a second reward")
	assert.Equal(t, 15, stats.Coins)
	assert.Len(t, f.activities.records, 1)
}

func TestCompleteSessionFinalizesOnce(t *testing.T) {
	today := date(2026, time.March, 10)
	f := newPipeline(model.ChildStats{ChildID: 1, ParentID: 10, Name: "Ada", Level: 1}, today)

	start := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	sessionID := f.activities.open(1, model.ActivityGame, 3, start)

	score := 95.0
	ev := ActivityEvent{
		ChildID:    1,
		Kind:       model.ActivityGame,
		ActivityID: 3,
		SessionID:  sessionID,
		Score:      &score,
		XP:         15,
		Coins:      7,
		Completed:  true,
		StartTime:  start,
		EndTime:    start.Add(5 * time.Minute),
	}

	_, err := f.svc.Complete(ev)
	require.NoError(t, err)

	_, err = f.svc.Complete(ev)
	assert.ErrorIs(t, err, util.ErrDuplicateSubmission)

	stats, _ := f.children.GetStats(1)
	assert.Equal(t, 15, stats.TotalXP)
}

func TestCompleteStreakFailureDoesNotRevertReward(t *testing.T) {
	today := date(2026, time.March, 10)
	f := newPipeline(model.ChildStats{ChildID: 1, ParentID: 10, Name: "Ada", TotalXP: 20, Level: 1, StreakDays: 3}, today)
	f.children.streakErr = assert.AnError

	result, err := f.svc.Complete(quizEvent(1, 30, 15, 100, "k1"))

	require.NoError(t, err, "a streak failure after the grant must not fail the request")
	assert.Equal(t, 50, result.Stats.TotalXP)
	assert.Equal(t, 3, result.Stats.StreakDays, "stats report the pre-touch streak")
}

func TestCompleteAdvancesGoals(t *testing.T) {
	today := date(2026, time.March, 10)
	f := newPipeline(model.ChildStats{ChildID: 1, ParentID: 10, Name: "Ada", Level: 1}, today)
	f.goals.goals[1] = &model.LearningGoal{
		BaseModel:   model.BaseModel{ID: 1},
		ChildID:     1,
		ParentID:    10,
		Kind:        model.GoalQuizzesCompleted,
		TargetValue: 1,
		EndDate:     today,
		Status:      model.GoalActive,
	}

	result, err := f.svc.Complete(quizEvent(1, 30, 15, 100, "k1"))

	require.NoError(t, err)
	require.Len(t, result.CompletedGoals, 1)
	assert.Equal(t, model.GoalCompleted, f.goals.goals[1].Status)
	assert.Len(t, f.sink.byKind(model.NotifyGoalCompleted), 1)
}

func TestApplyRewardLevelNeverDecreases(t *testing.T) {
	today := date(2026, time.March, 10)
	// Stored level already ahead of the derived one.
	f := newPipeline(model.ChildStats{ChildID: 1, ParentID: 10, Name: "Ada", TotalXP: 50, Level: 3}, today)

	stats, leveledUp, err := f.svc.ApplyReward(1, 10, 0)

	require.NoError(t, err)
	assert.False(t, leveledUp)
	assert.Equal(t, 3, stats.Level)
}

func TestCompleteUnknownChildLeavesNoRecord(t *testing.T) {
	today := date(2026, time.March, 10)
	f := newPipeline(model.ChildStats{ChildID: 1, ParentID: 10, Name: "Ada", Level: 1}, today)

	_, err := f.svc.Complete(quizEvent(99, 30, 15, 100, "k1"))

	assert.ErrorIs(t, err, util.ErrChildNotFound)
	assert.Empty(t, f.activities.records, "a rejected event must not persist a play session")
}

func TestCompleteAbandonedSessionFinalizesWithoutCounting(t *testing.T) {
	today := date(2026, time.March, 10)
	f := newPipeline(model.ChildStats{ChildID: 1, ParentID: 10, Name: "Ada", Level: 1}, today)

	start := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	sessionID := f.activities.open(1, model.ActivityGame, 3, start)

	score := 40.0
	ev := ActivityEvent{
		ChildID:    1,
		Kind:       model.ActivityGame,
		ActivityID: 3,
		SessionID:  sessionID,
		Score:      &score,
		XP:         10,
		Coins:      5,
		Completed:  false,
		StartTime:  start,
		EndTime:    start.Add(2 * time.Minute),
	}

	result, err := f.svc.Complete(ev)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Stats.TotalXP, "an abandoned run still pays its reward")

	require.Len(t, f.activities.records, 1)
	assert.False(t, f.activities.records[0].Completed)
	require.NotNil(t, f.activities.records[0].EndTime)

	agg, err := f.activities.Aggregates(1)
	require.NoError(t, err)
	assert.Equal(t, 0, agg.TotalActivities, "abandoned sessions stay out of completion counts")
	assert.Equal(t, 0, agg.GamesPlayed)

	_, err = f.svc.Complete(ev)
	assert.ErrorIs(t, err, util.ErrDuplicateSubmission, "an abandoned session cannot be finalized again")
}

func TestChildLockIsStableAndBounded(t *testing.T) {
	today := date(2026, time.March, 10)
	f := newPipeline(model.ChildStats{ChildID: 1, ParentID: 10, Name: "Ada", Level: 1}, today)

	assert.Same(t, f.svc.childLock(5), f.svc.childLock(5))
	assert.Same(t, f.svc.childLock(5), f.svc.childLock(5+childLockStripes),
		"children sharing a stripe share its lock")
	assert.NotSame(t, f.svc.childLock(5), f.svc.childLock(6))
}

func TestApplyRewardUnknownChild(t *testing.T) {
	today := date(2026, time.March, 10)
	f := newPipeline(model.ChildStats{ChildID: 1, ParentID: 10, Name: "Ada", Level: 1}, today)

	_, _, err := f.svc.ApplyReward(99, 10, 5)

	assert.ErrorIs(t, err, util.ErrChildNotFound)
}
