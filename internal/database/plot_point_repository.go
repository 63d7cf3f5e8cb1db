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

// Compile-time check to ensure plotPointRepository implements PlotPointRepository
var _ interfaces.PlotPointRepository = (*plotPointRepository)(nil)

type plotPointRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPlotPointRepository creates a new SQLite-backed PlotPointRepository.
func NewPlotPointRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.PlotPointRepository {
	return &plotPointRepository{
		db:     db,
		logger: logger.Named("PlotPointRepo"),
	}
}

const plotPointColumns = `id, story_id, title, description, type, order_index, created_at, updated_at`

// ListByStory returns the story's plot points in sequence order.
func (r *plotPointRepository) ListByStory(ctx context.Context, storyID int64) ([]*models.PlotPoint, error) {
	query := `SELECT ` + plotPointColumns + ` FROM plot_points WHERE story_id = ? ORDER BY order_index`

	var points []*models.PlotPoint
	if err := sqlscan.Select(ctx, r.db, &points, query, storyID); err != nil {
		r.logger.Error("Failed to list plot points", zap.Int64("storyID", storyID), zap.Error(err))
		return nil, fmt.Errorf("failed to list plot points for story %d: %w", storyID, err)
	}
	return points, nil
}

// Create inserts a new plot point and returns its generated id.
func (r *plotPointRepository) Create(ctx context.Context, point *models.PlotPoint) (int64, error) {
	query := `
        INSERT INTO plot_points (story_id, title, description, type, order_index)
        VALUES (?, ?, ?, ?, ?)
    `
	pointType := point.Type
	if pointType == "" {
		pointType = models.PlotPointTypeEvent
	}

	res, err := r.db.ExecContext(ctx, query,
		point.StoryID,
		point.Title,
		point.Description,
		pointType,
		point.OrderIndex,
	)
	if err != nil {
		r.logger.Error("Failed to create plot point", zap.Int64("storyID", point.StoryID), zap.String("title", point.Title), zap.Error(err))
		return 0, fmt.Errorf("failed to create plot point: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new plot point id: %w", err)
	}
	r.logger.Info("Plot point created", zap.Int64("plotPointID", id), zap.Int64("storyID", point.StoryID))
	return id, nil
}

// Update applies the non-nil patch fields and stamps updated_at.
func (r *plotPointRepository) Update(ctx context.Context, id int64, patch models.PlotPointPatch) error {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 5)

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Type != nil {
		sets = append(sets, "type = ?")
		args = append(args, *patch.Type)
	}
	if patch.OrderIndex != nil {
		sets = append(sets, "order_index = ?")
		args = append(args, *patch.OrderIndex)
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE plot_points SET %s WHERE id = ?`, strings.Join(sets, ", "))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update plot point", zap.Int64("plotPointID", id), zap.Error(err))
		return fmt.Errorf("failed to update plot point %d: %w", id, err)
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

// Delete removes the plot point.
func (r *plotPointRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plot_points WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("Failed to delete plot point", zap.Int64("plotPointID", id), zap.Error(err))
		return fmt.Errorf("failed to delete plot point %d: %w", id, err)
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
