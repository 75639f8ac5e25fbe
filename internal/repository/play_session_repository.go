package repository

import (
	"brightminds_backend/internal/model"
	"brightminds_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

type PlaySessionRepository struct {
	DB *gorm.DB
}

func NewPlaySessionRepository(db *gorm.DB) *PlaySessionRepository {
	return &PlaySessionRepository{DB: db}
}

// Start opens a session for a game attempt; rewards are written at finalize.
func (r *PlaySessionRepository) Start(childID uint, kind model.ActivityKind, activityID uint, startTime time.Time) (*model.PlaySession, error) {
	session := &model.PlaySession{
		ChildID:      childID,
		ActivityType: kind,
		ActivityID:   activityID,
		StartTime:    startTime,
	}
	if err := r.DB.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// Record inserts an already-completed attempt (quiz submit, story complete).
// A duplicate attempt key means the caller retried a request that was
// already rewarded.
func (r *PlaySessionRepository) Record(rec *model.PlaySession) error {
	err := r.DB.Create(rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return util.ErrDuplicateSubmission
	}
	return err
}

// Finalize writes the outcome of an open session exactly once. The
// end_time IS NULL guard makes a second finalize a detectable no-op instead
// of a double reward, whether the first outcome was completed or abandoned.
func (r *PlaySessionRepository) Finalize(sessionID uint, score *float64, xp, coins, durationSeconds int, completed bool, endTime time.Time) error {
	res := r.DB.Model(&model.PlaySession{}).
		Where("id = ? AND end_time IS NULL", sessionID).
		Updates(map[string]interface{}{
			"end_time":         endTime,
			"duration_seconds": durationSeconds,
			"score":            score,
			"xp_earned":        xp,
			"coins_earned":     coins,
			"completed":        completed,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrDuplicateSubmission
	}
	return nil
}

func (r *PlaySessionRepository) FindByIDAndChild(sessionID, childID uint) (*model.PlaySession, error) {
	var session model.PlaySession
	err := r.DB.Where("id = ? AND child_id = ?", sessionID, childID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	return &session, err
}

// Aggregates computes the completion counts achievements gate on.
func (r *PlaySessionRepository) Aggregates(childID uint) (*model.ActivityAggregates, error) {
	var agg model.ActivityAggregates
	row := r.DB.Model(&model.PlaySession{}).
		Select(
			"COUNT(*) AS total_activities, "+
				"COUNT(CASE WHEN activity_type = 'game' THEN 1 END) AS games_played, "+
				"COUNT(CASE WHEN activity_type = 'quiz' AND score = 100 THEN 1 END) AS perfect_quizzes").
		Where("child_id = ? AND completed = ?", childID, true).
		Row()
	if err := row.Scan(&agg.TotalActivities, &agg.GamesPlayed, &agg.PerfectQuizzes); err != nil {
		return nil, err
	}
	return &agg, nil
}

func (r *PlaySessionRepository) RecentByChild(childID uint, limit int) ([]model.PlaySession, error) {
	var sessions []model.PlaySession
	err := r.DB.Where("child_id = ? AND completed = ?", childID, true).
		Order("end_time DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

func (r *PlaySessionRepository) BestScore(childID, activityID uint, kind model.ActivityKind) (*float64, error) {
	var best *float64
	err := r.DB.Model(&model.PlaySession{}).
		Select("MAX(score)").
		Where("child_id = ? AND activity_id = ? AND activity_type = ?", childID, activityID, kind).
		Scan(&best).Error
	return best, err
}
