package service

import (
	"brightminds_backend/internal/model"
	"brightminds_backend/internal/util"
	"time"
)

// In-memory stores honoring the same guarantees as internal/repository, so
// the engine can be exercised without a database.

type fixedClock struct {
	today time.Time
}

func (c fixedClock) Today() time.Time { return c.today }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeChildStore struct {
	stats   map[uint]*model.ChildStats
	streaks map[uint]*model.StreakState

	streakErr error
}

func newFakeChildStore(children ...model.ChildStats) *fakeChildStore {
	s := &fakeChildStore{
		stats:   make(map[uint]*model.ChildStats),
		streaks: make(map[uint]*model.StreakState),
	}
	for i := range children {
		c := children[i]
		s.stats[c.ChildID] = &c
		s.streaks[c.ChildID] = &model.StreakState{StreakDays: c.StreakDays}
	}
	return s
}

func (s *fakeChildStore) ApplyDelta(childID uint, xpDelta, coinDelta int) (*model.ChildStats, error) {
	stats, ok := s.stats[childID]
	if !ok {
		return nil, util.ErrChildNotFound
	}
	stats.TotalXP += xpDelta
	stats.Coins += coinDelta
	out := *stats
	return &out, nil
}

func (s *fakeChildStore) UpdateLevel(childID uint, level int) error {
	stats, ok := s.stats[childID]
	if !ok {
		return util.ErrChildNotFound
	}
	if level > stats.Level {
		stats.Level = level
	}
	return nil
}

func (s *fakeChildStore) GetStats(childID uint) (*model.ChildStats, error) {
	stats, ok := s.stats[childID]
	if !ok {
		return nil, util.ErrChildNotFound
	}
	out := *stats
	return &out, nil
}

func (s *fakeChildStore) GetStreakState(childID uint) (*model.StreakState, error) {
	if s.streakErr != nil {
		return nil, s.streakErr
	}
	state, ok := s.streaks[childID]
	if !ok {
		return nil, util.ErrChildNotFound
	}
	out := *state
	return &out, nil
}

func (s *fakeChildStore) SetStreakState(childID uint, streakDays int, d time.Time) error {
	if s.streakErr != nil {
		return s.streakErr
	}
	state, ok := s.streaks[childID]
	if !ok {
		return util.ErrChildNotFound
	}
	day := d
	state.LastActivityDate = &day
	state.StreakDays = streakDays
	if stats, ok := s.stats[childID]; ok {
		stats.StreakDays = streakDays
	}
	return nil
}

type fakeActivityStore struct {
	records     []model.PlaySession
	attemptKeys map[string]bool
	nextID      uint
}

func newFakeActivityStore() *fakeActivityStore {
	return &fakeActivityStore{attemptKeys: make(map[string]bool), nextID: 1}
}

func (s *fakeActivityStore) Record(rec *model.PlaySession) error {
	if rec.AttemptKey != nil {
		if s.attemptKeys[*rec.AttemptKey] {
			return util.ErrDuplicateSubmission
		}
		s.attemptKeys[*rec.AttemptKey] = true
	}
	rec.ID = s.nextID
	s.nextID++
	s.records = append(s.records, *rec)
	return nil
}

func (s *fakeActivityStore) open(childID uint, kind model.ActivityKind, activityID uint, start time.Time) uint {
	id := s.nextID
	s.nextID++
	s.records = append(s.records, model.PlaySession{
		BaseModel:    model.BaseModel{ID: id},
		ChildID:      childID,
		ActivityType: kind,
		ActivityID:   activityID,
		StartTime:    start,
	})
	return id
}

func (s *fakeActivityStore) Finalize(sessionID uint, score *float64, xp, coins, durationSeconds int, completed bool, endTime time.Time) error {
	for i := range s.records {
		if s.records[i].ID != sessionID {
			continue
		}
		if s.records[i].EndTime != nil {
			return util.ErrDuplicateSubmission
		}
		s.records[i].Score = score
		s.records[i].XPEarned = xp
		s.records[i].CoinsEarned = coins
		s.records[i].DurationSeconds = durationSeconds
		s.records[i].EndTime = &endTime
		s.records[i].Completed = completed
		return nil
	}
	return util.ErrSessionNotFound
}

func (s *fakeActivityStore) Aggregates(childID uint) (*model.ActivityAggregates, error) {
	agg := &model.ActivityAggregates{}
	for _, rec := range s.records {
		if rec.ChildID != childID || !rec.Completed {
			continue
		}
		agg.TotalActivities++
		if rec.ActivityType == model.ActivityGame {
			agg.GamesPlayed++
		}
		if rec.ActivityType == model.ActivityQuiz && rec.Score != nil && *rec.Score == 100 {
			agg.PerfectQuizzes++
		}
	}
	return agg, nil
}

type fakeGoalStore struct {
	goals map[uint]*model.LearningGoal
}

func newFakeGoalStore(goals ...model.LearningGoal) *fakeGoalStore {
	s := &fakeGoalStore{goals: make(map[uint]*model.LearningGoal)}
	for i := range goals {
		g := goals[i]
		s.goals[g.ID] = &g
	}
	return s
}

func (s *fakeGoalStore) ActiveGoalsFor(childID uint, today time.Time) ([]model.LearningGoal, error) {
	var active []model.LearningGoal
	for _, g := range s.goals {
		if g.ChildID == childID && g.Status == model.GoalActive && !g.EndDate.Before(today) {
			active = append(active, *g)
		}
	}
	return active, nil
}

func (s *fakeGoalStore) UpdateProgress(goalID uint, progress int, status model.GoalStatus) error {
	g, ok := s.goals[goalID]
	if !ok {
		return util.ErrGoalNotFound
	}
	g.CurrentProgress = progress
	g.Status = status
	return nil
}

type fakeAchievementStore struct {
	achievements []model.Achievement
	unlocked     map[uint]map[uint]bool
}

func newFakeAchievementStore(achievements ...model.Achievement) *fakeAchievementStore {
	return &fakeAchievementStore{
		achievements: achievements,
		unlocked:     make(map[uint]map[uint]bool),
	}
}

func (s *fakeAchievementStore) ActiveUnclaimed(childID uint) ([]model.Achievement, error) {
	var out []model.Achievement
	for _, a := range s.achievements {
		if a.IsActive && !s.unlocked[childID][a.ID] {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *fakeAchievementStore) Unlock(childID, achievementID uint) (bool, error) {
	if s.unlocked[childID] == nil {
		s.unlocked[childID] = make(map[uint]bool)
	}
	if s.unlocked[childID][achievementID] {
		return false, nil
	}
	s.unlocked[childID][achievementID] = true
	return true, nil
}

type sinkEntry struct {
	parentID uint
	kind     model.NotificationKind
	title    string
	message  string
}

type fakeSink struct {
	entries []sinkEntry
	err     error
}

func (s *fakeSink) Notify(parentID uint, kind model.NotificationKind, title, message string) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, sinkEntry{parentID: parentID, kind: kind, title: title, message: message})
	return nil
}

func (s *fakeSink) byKind(kind model.NotificationKind) []sinkEntry {
	var out []sinkEntry
	for _, e := range s.entries {
		if e.kind == kind {
			out = append(out, e)
		}
	}
	return out
}
