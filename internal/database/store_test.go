package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestStore opens a fresh in-memory database for one test.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), ":memory:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "stories.db")

	store, err := Open(ctx, path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Second open against the same file must not fail on existing
	// tables and must not duplicate the seeded templates.
	store, err = Open(ctx, path, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	var count int
	err = store.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM templates`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, len(defaultTemplates), count)
}

func TestTemplateCatalogSeeded(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewTemplateRepository(store.DB(), zap.NewNop())

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(defaultTemplates))

	romance, err := repo.ListByCategory(ctx, "romance")
	require.NoError(t, err)
	require.Len(t, romance, 1)
	require.Equal(t, "เรื่องสั้นโรแมนติก", romance[0].Name)

	none, err := repo.ListByCategory(ctx, "horror")
	require.NoError(t, err)
	require.Empty(t, none)
}
