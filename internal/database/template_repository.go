package database

import (
	"context"
	"fmt"

	"thai-story-writer/internal/interfaces"
	"thai-story-writer/internal/models"

	"github.com/georgysavva/scany/v2/sqlscan"
	"go.uber.org/zap"
)

// Compile-time check to ensure templateRepository implements TemplateRepository
var _ interfaces.TemplateRepository = (*templateRepository)(nil)

type templateRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewTemplateRepository creates a new SQLite-backed TemplateRepository.
// The catalog is read-only; rows are seeded when the store opens.
func NewTemplateRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.TemplateRepository {
	return &templateRepository{
		db:     db,
		logger: logger.Named("TemplateRepo"),
	}
}

const templateColumns = `id, name, description, category, content, created_at`

// List returns the whole catalog grouped by category.
func (r *templateRepository) List(ctx context.Context) ([]*models.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates ORDER BY category, name`

	var templates []*models.Template
	if err := sqlscan.Select(ctx, r.db, &templates, query); err != nil {
		r.logger.Error("Failed to list templates", zap.Error(err))
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

// ListByCategory returns the templates in one category.
func (r *templateRepository) ListByCategory(ctx context.Context, category string) ([]*models.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates WHERE category = ? ORDER BY name`

	var templates []*models.Template
	if err := sqlscan.Select(ctx, r.db, &templates, query, category); err != nil {
		r.logger.Error("Failed to list templates by category", zap.String("category", category), zap.Error(err))
		return nil, fmt.Errorf("failed to list templates in category %q: %w", category, err)
	}
	return templates, nil
}
