package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"thai-story-writer/internal/interfaces"
	"thai-story-writer/internal/models"
	"thai-story-writer/internal/writing"

	"github.com/georgysavva/scany/v2/sqlscan"
	"go.uber.org/zap"
)

// Compile-time check to ensure chapterRepository implements ChapterRepository
var _ interfaces.ChapterRepository = (*chapterRepository)(nil)

type chapterRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewChapterRepository creates a new SQLite-backed ChapterRepository.
func NewChapterRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.ChapterRepository {
	return &chapterRepository{
		db:     db,
		logger: logger.Named("ChapterRepo"),
	}
}

const chapterColumns = `id, story_id, title, content, word_count, order_index, created_at, updated_at`

// ListByStory returns the story's chapters in reading order. Gaps in
// order_index are expected after deletions.
func (r *chapterRepository) ListByStory(ctx context.Context, storyID int64) ([]*models.Chapter, error) {
	query := `SELECT ` + chapterColumns + ` FROM chapters WHERE story_id = ? ORDER BY order_index`

	var chapters []*models.Chapter
	if err := sqlscan.Select(ctx, r.db, &chapters, query, storyID); err != nil {
		r.logger.Error("Failed to list chapters", zap.Int64("storyID", storyID), zap.Error(err))
		return nil, fmt.Errorf("failed to list chapters for story %d: %w", storyID, err)
	}
	return chapters, nil
}

// GetByID returns the chapter or interfaces.ErrNotFound.
func (r *chapterRepository) GetByID(ctx context.Context, id int64) (*models.Chapter, error) {
	query := `SELECT ` + chapterColumns + ` FROM chapters WHERE id = ?`

	var chapter models.Chapter
	if err := sqlscan.Get(ctx, r.db, &chapter, query, id); err != nil {
		if sqlscan.NotFound(err) {
			return nil, interfaces.ErrNotFound
		}
		r.logger.Error("Failed to get chapter", zap.Int64("chapterID", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get chapter %d: %w", id, err)
	}
	return &chapter, nil
}

// Create inserts a new chapter. word_count is derived from the content,
// never taken from the caller, and the owning story's aggregate count
// is refreshed afterwards.
func (r *chapterRepository) Create(ctx context.Context, chapter *models.Chapter) (int64, error) {
	query := `
        INSERT INTO chapters (story_id, title, content, word_count, order_index)
        VALUES (?, ?, ?, ?, ?)
    `
	wordCount := writing.WordCount(chapter.Content)

	res, err := r.db.ExecContext(ctx, query,
		chapter.StoryID,
		chapter.Title,
		chapter.Content,
		wordCount,
		chapter.OrderIndex,
	)
	if err != nil {
		r.logger.Error("Failed to create chapter", zap.Int64("storyID", chapter.StoryID), zap.String("title", chapter.Title), zap.Error(err))
		return 0, fmt.Errorf("failed to create chapter: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new chapter id: %w", err)
	}

	if err := r.refreshStoryWordCount(ctx, chapter.StoryID); err != nil {
		return 0, err
	}

	r.logger.Info("Chapter created", zap.Int64("chapterID", id), zap.Int64("storyID", chapter.StoryID), zap.Int("wordCount", wordCount))
	return id, nil
}

// Update applies the non-nil patch fields and stamps updated_at. When
// content is present the word count is recomputed, including for empty
// content (which counts zero words).
func (r *chapterRepository) Update(ctx context.Context, id int64, patch models.ChapterPatch) error {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Content != nil {
		sets = append(sets, "content = ?", "word_count = ?")
		args = append(args, *patch.Content, writing.WordCount(*patch.Content))
	}
	if patch.OrderIndex != nil {
		sets = append(sets, "order_index = ?")
		args = append(args, *patch.OrderIndex)
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE chapters SET %s WHERE id = ?`, strings.Join(sets, ", "))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update chapter", zap.Int64("chapterID", id), zap.Error(err))
		return fmt.Errorf("failed to update chapter %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return interfaces.ErrNotFound
	}

	if patch.Content != nil {
		storyID, err := r.storyIDOf(ctx, id)
		if err != nil {
			return err
		}
		return r.refreshStoryWordCount(ctx, storyID)
	}
	return nil
}

// Delete removes the chapter and refreshes the story's aggregate word
// count. Remaining chapters are never renumbered.
func (r *chapterRepository) Delete(ctx context.Context, id int64) error {
	storyID, err := r.storyIDOf(ctx, id)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM chapters WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("Failed to delete chapter", zap.Int64("chapterID", id), zap.Error(err))
		return fmt.Errorf("failed to delete chapter %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return interfaces.ErrNotFound
	}

	return r.refreshStoryWordCount(ctx, storyID)
}

func (r *chapterRepository) storyIDOf(ctx context.Context, chapterID int64) (int64, error) {
	var storyID int64
	err := r.db.QueryRowContext(ctx, `SELECT story_id FROM chapters WHERE id = ?`, chapterID).Scan(&storyID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, interfaces.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve story of chapter %d: %w", chapterID, err)
	}
	return storyID, nil
}

// refreshStoryWordCount re-derives stories.current_word_count from the
// story's chapters so it cannot drift from the chapter totals.
func (r *chapterRepository) refreshStoryWordCount(ctx context.Context, storyID int64) error {
	query := `
        UPDATE stories
        SET current_word_count = (
            SELECT COALESCE(SUM(word_count), 0) FROM chapters WHERE story_id = ?
        )
        WHERE id = ?
    `
	if _, err := r.db.ExecContext(ctx, query, storyID, storyID); err != nil {
		r.logger.Error("Failed to refresh story word count", zap.Int64("storyID", storyID), zap.Error(err))
		return fmt.Errorf("failed to refresh word count of story %d: %w", storyID, err)
	}
	return nil
}
