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

// Compile-time check to ensure characterRepository implements CharacterRepository
var _ interfaces.CharacterRepository = (*characterRepository)(nil)

type characterRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewCharacterRepository creates a new SQLite-backed CharacterRepository.
func NewCharacterRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.CharacterRepository {
	return &characterRepository{
		db:     db,
		logger: logger.Named("CharacterRepo"),
	}
}

const characterColumns = `id, story_id, name, description, appearance, personality, background, role, created_at, updated_at`

// ListByStory returns the story's characters in creation order.
func (r *characterRepository) ListByStory(ctx context.Context, storyID int64) ([]*models.Character, error) {
	query := `SELECT ` + characterColumns + ` FROM characters WHERE story_id = ? ORDER BY created_at, id`

	var characters []*models.Character
	if err := sqlscan.Select(ctx, r.db, &characters, query, storyID); err != nil {
		r.logger.Error("Failed to list characters", zap.Int64("storyID", storyID), zap.Error(err))
		return nil, fmt.Errorf("failed to list characters for story %d: %w", storyID, err)
	}
	return characters, nil
}

// Create inserts a new character and returns its generated id.
func (r *characterRepository) Create(ctx context.Context, character *models.Character) (int64, error) {
	query := `
        INSERT INTO characters (story_id, name, description, appearance, personality, background, role)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	role := character.Role
	if role == "" {
		role = models.CharacterRoleSupporting
	}

	res, err := r.db.ExecContext(ctx, query,
		character.StoryID,
		character.Name,
		character.Description,
		character.Appearance,
		character.Personality,
		character.Background,
		role,
	)
	if err != nil {
		r.logger.Error("Failed to create character", zap.Int64("storyID", character.StoryID), zap.String("name", character.Name), zap.Error(err))
		return 0, fmt.Errorf("failed to create character: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new character id: %w", err)
	}
	r.logger.Info("Character created", zap.Int64("characterID", id), zap.Int64("storyID", character.StoryID))
	return id, nil
}

// Update applies the non-nil patch fields and stamps updated_at.
func (r *characterRepository) Update(ctx context.Context, id int64, patch models.CharacterPatch) error {
	sets := make([]string, 0, 7)
	args := make([]any, 0, 7)

	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Appearance != nil {
		sets = append(sets, "appearance = ?")
		args = append(args, *patch.Appearance)
	}
	if patch.Personality != nil {
		sets = append(sets, "personality = ?")
		args = append(args, *patch.Personality)
	}
	if patch.Background != nil {
		sets = append(sets, "background = ?")
		args = append(args, *patch.Background)
	}
	if patch.Role != nil {
		sets = append(sets, "role = ?")
		args = append(args, *patch.Role)
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE characters SET %s WHERE id = ?`, strings.Join(sets, ", "))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update character", zap.Int64("characterID", id), zap.Error(err))
		return fmt.Errorf("failed to update character %d: %w", id, err)
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

// Delete removes the character.
func (r *characterRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("Failed to delete character", zap.Int64("characterID", id), zap.Error(err))
		return fmt.Errorf("failed to delete character %d: %w", id, err)
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
