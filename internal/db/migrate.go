package db

import (
	"database/sql"
	"fmt"
)

// migrations run in order on every open, so each statement must be
// idempotent against an already-migrated database.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		start_date TEXT NOT NULL DEFAULT '',
		end_date   TEXT NOT NULL DEFAULT '',
		status     TEXT NOT NULL DEFAULT 'En curso',
		lead       TEXT NOT NULL DEFAULT '',
		team       TEXT NOT NULL DEFAULT '[]',
		budget     TEXT NOT NULL DEFAULT '{}',
		milestones TEXT NOT NULL DEFAULT '[]',
		dossier    TEXT NOT NULL DEFAULT '{}',
		costs      TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS personnel (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT '',
		phone         TEXT NOT NULL DEFAULT '',
		monthly_rate  REAL NOT NULL DEFAULT 0,
		projects      TEXT NOT NULL DEFAULT '[]',
		subordinates  TEXT NOT NULL DEFAULT '[]',
		active_months TEXT NOT NULL DEFAULT '{}',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		email         TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_name ON projects(name)`,
	`CREATE INDEX IF NOT EXISTS idx_personnel_name ON personnel(name)`,
}

// Migrate runs all schema migrations in order.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
