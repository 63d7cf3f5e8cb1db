package database

import (
	"context"
	"fmt"
	"time"

	"thai-story-writer/internal/interfaces"
	"thai-story-writer/internal/models"

	"github.com/georgysavva/scany/v2/sqlscan"
	"go.uber.org/zap"
)

// Compile-time check to ensure sessionRepository implements SessionRepository
var _ interfaces.SessionRepository = (*sessionRepository)(nil)

type sessionRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
	// now is swappable so window tests can pin the anchor date.
	now func() time.Time
}

// NewSessionRepository creates a new SQLite-backed SessionRepository.
func NewSessionRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.SessionRepository {
	return &sessionRepository{
		db:     db,
		logger: logger.Named("SessionRepo"),
		now:    time.Now,
	}
}

const sessionColumns = `id, story_id, words_written, session_duration, date, created_at`

// Record upserts the session for (story_id, date). Recording the same
// date twice overwrites words and duration: last write wins per day.
func (r *sessionRepository) Record(ctx context.Context, session *models.WritingSession) error {
	query := `
        INSERT INTO writing_sessions (story_id, words_written, session_duration, date)
        VALUES (?, ?, ?, ?)
        ON CONFLICT (story_id, date) DO UPDATE SET
            words_written = excluded.words_written,
            session_duration = excluded.session_duration
    `
	_, err := r.db.ExecContext(ctx, query,
		session.StoryID,
		session.WordsWritten,
		session.SessionDuration,
		session.Date,
	)
	if err != nil {
		r.logger.Error("Failed to record writing session", zap.Int64("storyID", session.StoryID), zap.String("date", session.Date), zap.Error(err))
		return fmt.Errorf("failed to record writing session: %w", err)
	}
	r.logger.Debug("Writing session recorded", zap.Int64("storyID", session.StoryID), zap.String("date", session.Date), zap.Int("words", session.WordsWritten))
	return nil
}

// ListRecent returns the story's sessions within the trailing window,
// inclusive and anchored to today, most recent first. The cutoff is
// computed here and bound as a parameter.
func (r *sessionRepository) ListRecent(ctx context.Context, storyID int64, windowDays int) ([]*models.WritingSession, error) {
	if windowDays <= 0 {
		windowDays = 30
	}
	cutoff := r.now().AddDate(0, 0, -windowDays).Format("2006-01-02")

	query := `
        SELECT ` + sessionColumns + `
        FROM writing_sessions
        WHERE story_id = ? AND date >= ?
        ORDER BY date DESC
    `
	var sessions []*models.WritingSession
	if err := sqlscan.Select(ctx, r.db, &sessions, query, storyID, cutoff); err != nil {
		r.logger.Error("Failed to list writing sessions", zap.Int64("storyID", storyID), zap.Error(err))
		return nil, fmt.Errorf("failed to list writing sessions for story %d: %w", storyID, err)
	}
	return sessions, nil
}

// Overview aggregates across all of the story's sessions, ignoring any
// windowing.
func (r *sessionRepository) Overview(ctx context.Context, storyID int64) (*models.WritingStats, error) {
	query := `
        SELECT
            COALESCE(SUM(words_written), 0) AS total_words,
            COALESCE(SUM(session_duration), 0) AS total_time,
            COUNT(*) AS session_count,
            COALESCE(AVG(words_written), 0) AS avg_words_per_session
        FROM writing_sessions
        WHERE story_id = ?
    `
	var stats models.WritingStats
	if err := sqlscan.Get(ctx, r.db, &stats, query, storyID); err != nil {
		r.logger.Error("Failed to aggregate writing stats", zap.Int64("storyID", storyID), zap.Error(err))
		return nil, fmt.Errorf("failed to aggregate writing stats for story %d: %w", storyID, err)
	}
	return &stats, nil
}
