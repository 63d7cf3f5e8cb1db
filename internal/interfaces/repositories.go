package interfaces

import (
	"context"

	"thai-story-writer/internal/models"
)

// StoryRepository defines data access for stories.
type StoryRepository interface {
	// List returns every story, most recently updated first.
	List(ctx context.Context) ([]*models.Story, error)
	// GetByID returns the story or ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Story, error)
	// Create inserts a new story and returns its generated id.
	Create(ctx context.Context, story *models.Story) (int64, error)
	// Update applies the non-nil patch fields and stamps updated_at.
	// Returns ErrNotFound if no row matched.
	Update(ctx context.Context, id int64, patch models.StoryPatch) error
	// Delete removes the story; chapters, characters and plot points go
	// with it via cascading foreign keys. Returns ErrNotFound if no row
	// matched.
	Delete(ctx context.Context, id int64) error
}

// ChapterRepository defines data access for chapters.
//
// Every write that carries content recomputes the chapter's word count
// and refreshes the owning story's current_word_count.
type ChapterRepository interface {
	// ListByStory returns the story's chapters ordered by order_index.
	ListByStory(ctx context.Context, storyID int64) ([]*models.Chapter, error)
	GetByID(ctx context.Context, id int64) (*models.Chapter, error)
	Create(ctx context.Context, chapter *models.Chapter) (int64, error)
	Update(ctx context.Context, id int64, patch models.ChapterPatch) error
	Delete(ctx context.Context, id int64) error
}

// CharacterRepository defines data access for characters.
type CharacterRepository interface {
	// ListByStory returns the story's characters in creation order.
	ListByStory(ctx context.Context, storyID int64) ([]*models.Character, error)
	Create(ctx context.Context, character *models.Character) (int64, error)
	Update(ctx context.Context, id int64, patch models.CharacterPatch) error
	Delete(ctx context.Context, id int64) error
}

// PlotPointRepository defines data access for plot points.
type PlotPointRepository interface {
	// ListByStory returns the story's plot points ordered by order_index.
	ListByStory(ctx context.Context, storyID int64) ([]*models.PlotPoint, error)
	Create(ctx context.Context, point *models.PlotPoint) (int64, error)
	Update(ctx context.Context, id int64, patch models.PlotPointPatch) error
	Delete(ctx context.Context, id int64) error
}

// SessionRepository defines data access for writing sessions and their
// aggregates.
type SessionRepository interface {
	// Record upserts the session for (storyID, date): a second call for
	// the same date overwrites words/duration rather than summing them.
	Record(ctx context.Context, session *models.WritingSession) error
	// ListRecent returns sessions within the trailing windowDays
	// (inclusive, anchored to today), most recent first.
	ListRecent(ctx context.Context, storyID int64, windowDays int) ([]*models.WritingSession, error)
	// Overview aggregates across all of the story's sessions.
	Overview(ctx context.Context, storyID int64) (*models.WritingStats, error)
}

// TemplateRepository defines read-only access to the template catalog.
type TemplateRepository interface {
	List(ctx context.Context) ([]*models.Template, error)
	ListByCategory(ctx context.Context, category string) ([]*models.Template, error)
}
