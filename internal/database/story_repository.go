package database

import (
	"context"
	"fmt"
	"strings"

	"thai-story-writer/internal/interfaces"
	"thai-story-writer/internal/models"

	"github.com/georgysavva/scany/v2/sqlscan"
	"go.uber.org/zap"
)

// Compile-time check to ensure storyRepository implements StoryRepository
var _ interfaces.StoryRepository = (*storyRepository)(nil)

type storyRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewStoryRepository creates a new SQLite-backed StoryRepository.
func NewStoryRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.StoryRepository {
	return &storyRepository{
		db:     db,
		logger: logger.Named("StoryRepo"),
	}
}

const storyColumns = `id, title, description, genre, target_word_count, current_word_count, status, created_at, updated_at`

// List returns every story, most recently updated first.
func (r *storyRepository) List(ctx context.Context) ([]*models.Story, error) {
	query := `SELECT ` + storyColumns + ` FROM stories ORDER BY updated_at DESC, id DESC`

	var stories []*models.Story
	if err := sqlscan.Select(ctx, r.db, &stories, query); err != nil {
		r.logger.Error("Failed to list stories", zap.Error(err))
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	return stories, nil
}

// GetByID returns the story with the given id or interfaces.ErrNotFound.
func (r *storyRepository) GetByID(ctx context.Context, id int64) (*models.Story, error) {
	query := `SELECT ` + storyColumns + ` FROM stories WHERE id = ?`

	var story models.Story
	if err := sqlscan.Get(ctx, r.db, &story, query, id); err != nil {
		if sqlscan.NotFound(err) {
			return nil, interfaces.ErrNotFound
		}
		r.logger.Error("Failed to get story", zap.Int64("storyID", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get story %d: %w", id, err)
	}
	return &story, nil
}

// Create inserts a new story and returns its generated id. Empty
// defaults are applied here so NULLs never reach the table.
func (r *storyRepository) Create(ctx context.Context, story *models.Story) (int64, error) {
	query := `
        INSERT INTO stories (title, description, genre, target_word_count, status)
        VALUES (?, ?, ?, ?, ?)
    `
	status := story.Status
	if status == "" {
		status = models.StoryStatusDraft
	}

	res, err := r.db.ExecContext(ctx, query,
		story.Title,
		story.Description,
		story.Genre,
		story.TargetWordCount,
		status,
	)
	if err != nil {
		r.logger.Error("Failed to create story", zap.String("title", story.Title), zap.Error(err))
		return 0, fmt.Errorf("failed to create story: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new story id: %w", err)
	}
	r.logger.Info("Story created", zap.Int64("storyID", id), zap.String("title", story.Title))
	return id, nil
}

// Update applies the non-nil patch fields and stamps updated_at.
func (r *storyRepository) Update(ctx context.Context, id int64, patch models.StoryPatch) error {
	sets := make([]string, 0, 7)
	args := make([]any, 0, 7)

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Genre != nil {
		sets = append(sets, "genre = ?")
		args = append(args, *patch.Genre)
	}
	if patch.TargetWordCount != nil {
		sets = append(sets, "target_word_count = ?")
		args = append(args, *patch.TargetWordCount)
	}
	if patch.CurrentWordCount != nil {
		sets = append(sets, "current_word_count = ?")
		args = append(args, *patch.CurrentWordCount)
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *patch.Status)
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE stories SET %s WHERE id = ?`, strings.Join(sets, ", "))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update story", zap.Int64("storyID", id), zap.Error(err))
		return fmt.Errorf("failed to update story %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

// Delete removes the story. Chapters, characters, plot points and
// writing sessions are removed by the cascading foreign keys.
func (r *storyRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stories WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("Failed to delete story", zap.Int64("storyID", id), zap.Error(err))
		return fmt.Errorf("failed to delete story %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return interfaces.ErrNotFound
	}
	r.logger.Info("Story deleted", zap.Int64("storyID", id))
	return nil
}
