package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent schema statements run on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS drafts (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL DEFAULT '',
		token TEXT NOT NULL DEFAULT '',
		payload TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_drafts_updated_at ON drafts(updated_at)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
