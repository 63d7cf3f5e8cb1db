// Package database provides the SQLite-backed persistence layer: a
// store owning the database handle plus one repository per entity.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// schema defines all tables. Executed on every open, so startup is
// idempotent. Dependent tables reference stories with ON DELETE CASCADE.
// Timestamp and date columns are declared TEXT: a DATE/DATETIME
// declaration makes the driver hand rows back as time.Time, and these
// values must round-trip as the stored ISO strings.
const schema = `
CREATE TABLE IF NOT EXISTS stories (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT,
    genre TEXT,
    target_word_count INTEGER DEFAULT 0,
    current_word_count INTEGER DEFAULT 0,
    status TEXT DEFAULT 'draft',
    created_at TEXT DEFAULT CURRENT_TIMESTAMP,
    updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS chapters (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    story_id INTEGER NOT NULL,
    title TEXT NOT NULL,
    content TEXT DEFAULT '',
    word_count INTEGER DEFAULT 0,
    order_index INTEGER NOT NULL,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP,
    updated_at TEXT DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (story_id) REFERENCES stories (id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS characters (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    story_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    description TEXT,
    appearance TEXT,
    personality TEXT,
    background TEXT,
    role TEXT DEFAULT 'supporting',
    created_at TEXT DEFAULT CURRENT_TIMESTAMP,
    updated_at TEXT DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (story_id) REFERENCES stories (id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS plot_points (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    story_id INTEGER NOT NULL,
    title TEXT NOT NULL,
    description TEXT,
    type TEXT DEFAULT 'event',
    order_index INTEGER NOT NULL,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP,
    updated_at TEXT DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (story_id) REFERENCES stories (id) ON DELETE CASCADE
);

-- UNIQUE(story_id, date) backs the one-session-per-day upsert.
CREATE TABLE IF NOT EXISTS writing_sessions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    story_id INTEGER NOT NULL,
    words_written INTEGER DEFAULT 0,
    session_duration INTEGER DEFAULT 0,
    date TEXT NOT NULL,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (story_id, date),
    FOREIGN KEY (story_id) REFERENCES stories (id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS templates (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    description TEXT,
    category TEXT,
    content TEXT,
    created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`

// Store owns the SQLite handle. Construct with Open, release with Close.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens (creating if necessary) the database file at path, applies
// the schema and seeds the template catalog. Use ":memory:" for a fresh
// throwaway instance, e.g. in tests.
func Open(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	// foreign_keys is per-connection state, so it rides in the DSN and
	// applies to every connection the pool opens, not just the first.
	dsn := "file:" + path + "?_pragma=foreign_keys(1)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %q: %w", path, err)
	}

	// Single-writer app: one connection keeps SQLite happy and makes
	// in-memory databases behave.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	s := &Store{db: db, logger: logger.Named("SQLiteStore")}

	if err := s.seedTemplates(ctx); err != nil {
		db.Close()
		return nil, err
	}

	s.logger.Info("Database ready", zap.String("path", path))
	return s, nil
}

// DB exposes the handle for the repositories.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// seedTemplates inserts the built-in narrative templates, keyed by
// name, skipping any that already exist.
func (s *Store) seedTemplates(ctx context.Context) error {
	const query = `
        INSERT OR IGNORE INTO templates (name, description, category, content)
        VALUES (?, ?, ?, ?)
    `
	for _, t := range defaultTemplates {
		if _, err := s.db.ExecContext(ctx, query, t.name, t.description, t.category, t.content); err != nil {
			s.logger.Error("Failed to seed template", zap.String("name", t.name), zap.Error(err))
			return fmt.Errorf("failed to seed template %q: %w", t.name, err)
		}
	}
	return nil
}
