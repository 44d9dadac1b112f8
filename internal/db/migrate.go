package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS user_location (
		id          TEXT PRIMARY KEY DEFAULT 'default',
		latitude    REAL NOT NULL,
		longitude   REAL NOT NULL,
		city_name   TEXT NOT NULL DEFAULT '',
		time_zone   TEXT NOT NULL,
		is_accurate INTEGER NOT NULL DEFAULT 0,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS user_profile (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL DEFAULT '',
		element    TEXT NOT NULL
		           CHECK(element IN ('fire','water','air','earth')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_profile_updated ON user_profile(updated_at)`,

	// Record where a saved location came from.
	`ALTER TABLE user_location ADD COLUMN source TEXT NOT NULL DEFAULT 'manual'`,
}
