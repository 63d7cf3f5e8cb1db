package database

import (
	"context"
	"testing"

	"thai-story-writer/internal/interfaces"
	"thai-story-writer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func createTestStory(t *testing.T, store *Store) int64 {
	t.Helper()
	id, err := NewStoryRepository(store.DB(), zap.NewNop()).Create(context.Background(), &models.Story{Title: "test story"})
	require.NoError(t, err)
	return id
}

func TestChapterCreateDerivesWordCount(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewChapterRepository(store.DB(), zap.NewNop())
	storyID := createTestStory(t, store)

	id, err := repo.Create(ctx, &models.Chapter{
		StoryID:    storyID,
		Title:      "บทที่หนึ่ง",
		Content:    "hello world",
		OrderIndex: 0,
		WordCount:  999, // Must be ignored, the count is derived
	})
	require.NoError(t, err)

	chapter, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, chapter.WordCount)
	assert.Equal(t, "hello world", chapter.Content)
}

func TestChapterUpdateRecomputesWordCount(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewChapterRepository(store.DB(), zap.NewNop())
	storyID := createTestStory(t, store)

	id, err := repo.Create(ctx, &models.Chapter{StoryID: storyID, Title: "ch", Content: "one two three", OrderIndex: 0})
	require.NoError(t, err)

	content := "hello world"
	require.NoError(t, repo.Update(ctx, id, models.ChapterPatch{Content: &content}))

	chapter, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, chapter.WordCount)
}

func TestChapterUpdateEmptyContentCountsZero(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewChapterRepository(store.DB(), zap.NewNop())
	storyID := createTestStory(t, store)

	id, err := repo.Create(ctx, &models.Chapter{StoryID: storyID, Title: "ch", Content: "some words here", OrderIndex: 0})
	require.NoError(t, err)

	// Pinned convention: writing empty content recomputes the count to
	// zero, it does not leave the old value and does not count 1.
	empty := ""
	require.NoError(t, repo.Update(ctx, id, models.ChapterPatch{Content: &empty}))

	chapter, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, chapter.WordCount)
}

func TestChapterUpdateWithoutContentKeepsWordCount(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewChapterRepository(store.DB(), zap.NewNop())
	storyID := createTestStory(t, store)

	id, err := repo.Create(ctx, &models.Chapter{StoryID: storyID, Title: "ch", Content: "a b c", OrderIndex: 0})
	require.NoError(t, err)

	title := "renamed"
	require.NoError(t, repo.Update(ctx, id, models.ChapterPatch{Title: &title}))

	chapter, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "renamed", chapter.Title)
	assert.Equal(t, 3, chapter.WordCount)
}

func TestChapterUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewChapterRepository(store.DB(), zap.NewNop())

	content := "anything"
	err := repo.Update(ctx, 9999, models.ChapterPatch{Content: &content})
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestChapterListOrdersByOrderIndex(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewChapterRepository(store.DB(), zap.NewNop())
	storyID := createTestStory(t, store)

	// Insert out of order.
	for _, idx := range []int{2, 0, 1} {
		_, err := repo.Create(ctx, &models.Chapter{StoryID: storyID, Title: "ch", OrderIndex: idx})
		require.NoError(t, err)
	}

	chapters, err := repo.ListByStory(ctx, storyID)
	require.NoError(t, err)
	require.Len(t, chapters, 3)
	for i, ch := range chapters {
		assert.Equal(t, i, ch.OrderIndex)
	}
}

func TestChapterWritesRefreshStoryWordCount(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	logger := zap.NewNop()
	stories := NewStoryRepository(store.DB(), logger)
	chapters := NewChapterRepository(store.DB(), logger)
	storyID := createTestStory(t, store)

	first, err := chapters.Create(ctx, &models.Chapter{StoryID: storyID, Title: "ch1", Content: "one two three", OrderIndex: 0})
	require.NoError(t, err)
	_, err = chapters.Create(ctx, &models.Chapter{StoryID: storyID, Title: "ch2", Content: "four five", OrderIndex: 1})
	require.NoError(t, err)

	story, err := stories.GetByID(ctx, storyID)
	require.NoError(t, err)
	assert.Equal(t, 5, story.CurrentWordCount)

	content := "now five words in here"
	require.NoError(t, chapters.Update(ctx, first, models.ChapterPatch{Content: &content}))

	story, err = stories.GetByID(ctx, storyID)
	require.NoError(t, err)
	assert.Equal(t, 7, story.CurrentWordCount)

	require.NoError(t, chapters.Delete(ctx, first))

	story, err = stories.GetByID(ctx, storyID)
	require.NoError(t, err)
	assert.Equal(t, 2, story.CurrentWordCount)
}

func TestChapterDeleteLeavesGaps(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewChapterRepository(store.DB(), zap.NewNop())
	storyID := createTestStory(t, store)

	var ids []int64
	for idx := 0; idx < 3; idx++ {
		id, err := repo.Create(ctx, &models.Chapter{StoryID: storyID, Title: "ch", OrderIndex: idx})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	require.NoError(t, repo.Delete(ctx, ids[1]))

	chapters, err := repo.ListByStory(ctx, storyID)
	require.NoError(t, err)
	require.Len(t, chapters, 2)
	// No renumbering: index 1 is simply gone.
	assert.Equal(t, 0, chapters[0].OrderIndex)
	assert.Equal(t, 2, chapters[1].OrderIndex)
}
