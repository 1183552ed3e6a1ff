package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{db}, nil
}

// InitSchema creates the archive tables if they do not exist.
func (db *DB) InitSchema() error {
	schema := `
CREATE TABLE IF NOT EXISTS session_archive (
    session_id TEXT NOT NULL,
    state TEXT NOT NULL,
    primary_issue TEXT NOT NULL,
    interventions_tried TEXT NOT NULL,
    progress_count INTEGER NOT NULL,
    average_frustration REAL NOT NULL,
    frustration_history TEXT NOT NULL,
    start_time TIMESTAMP NOT NULL,
    last_update TIMESTAMP NOT NULL,
    archived_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_archive_session ON session_archive(session_id);
CREATE INDEX IF NOT EXISTS idx_archive_archived_at ON session_archive(archived_at);
`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	return nil
}
