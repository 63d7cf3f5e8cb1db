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

func TestCharacterCreateDefaults(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewCharacterRepository(store.DB(), zap.NewNop())
	storyID := createTestStory(t, store)

	id, err := repo.Create(ctx, &models.Character{StoryID: storyID, Name: "สมชาย"})
	require.NoError(t, err)
	require.Positive(t, id)

	characters, err := repo.ListByStory(ctx, storyID)
	require.NoError(t, err)
	require.Len(t, characters, 1)
	assert.Equal(t, "สมชาย", characters[0].Name)
	assert.Equal(t, models.CharacterRoleSupporting, characters[0].Role)
	assert.Equal(t, "", characters[0].Description)
	assert.Equal(t, "", characters[0].Appearance)
}

func TestCharacterListInCreationOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewCharacterRepository(store.DB(), zap.NewNop())
	storyID := createTestStory(t, store)

	for _, name := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, &models.Character{StoryID: storyID, Name: name})
		require.NoError(t, err)
	}

	characters, err := repo.ListByStory(ctx, storyID)
	require.NoError(t, err)
	require.Len(t, characters, 3)
	assert.Equal(t, "first", characters[0].Name)
	assert.Equal(t, "second", characters[1].Name)
	assert.Equal(t, "third", characters[2].Name)
}

func TestCharacterUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewCharacterRepository(store.DB(), zap.NewNop())
	storyID := createTestStory(t, store)

	id, err := repo.Create(ctx, &models.Character{StoryID: storyID, Name: "villain"})
	require.NoError(t, err)

	role := models.CharacterRoleAntagonist
	background := "a tragic past"
	require.NoError(t, repo.Update(ctx, id, models.CharacterPatch{Role: &role, Background: &background}))

	characters, err := repo.ListByStory(ctx, storyID)
	require.NoError(t, err)
	require.Len(t, characters, 1)
	assert.Equal(t, models.CharacterRoleAntagonist, characters[0].Role)
	assert.Equal(t, "a tragic past", characters[0].Background)
	assert.Equal(t, "villain", characters[0].Name)

	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), interfaces.ErrNotFound)
}

func TestPlotPointCRUD(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewPlotPointRepository(store.DB(), zap.NewNop())
	storyID := createTestStory(t, store)

	id, err := repo.Create(ctx, &models.PlotPoint{StoryID: storyID, Title: "จุดเริ่มต้น", OrderIndex: 1})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.PlotPoint{StoryID: storyID, Title: "climax", Type: models.PlotPointTypeClimax, OrderIndex: 0})
	require.NoError(t, err)

	points, err := repo.ListByStory(ctx, storyID)
	require.NoError(t, err)
	require.Len(t, points, 2)
	// Ordered by order_index, and the default type applied.
	assert.Equal(t, "climax", points[0].Title)
	assert.Equal(t, models.PlotPointTypeEvent, points[1].Type)

	newType := models.PlotPointTypeConflict
	require.NoError(t, repo.Update(ctx, id, models.PlotPointPatch{Type: &newType}))

	points, err = repo.ListByStory(ctx, storyID)
	require.NoError(t, err)
	assert.Equal(t, models.PlotPointTypeConflict, points[1].Type)

	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Update(ctx, id, models.PlotPointPatch{Type: &newType}), interfaces.ErrNotFound)
}
