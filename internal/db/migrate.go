package db

import (
	"database/sql"
	"fmt"
)

// migrations hold schema statements written to be valid for both SQLite
// and PostgreSQL. Every statement is safe to re-run.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id                 TEXT PRIMARY KEY,
		plan_name          TEXT NOT NULL,
		spec_level         TEXT NOT NULL,
		client_name        TEXT NOT NULL DEFAULT '',
		client_division    TEXT NOT NULL DEFAULT '',
		client_subdivision TEXT NOT NULL,
		garage_loading     TEXT NOT NULL DEFAULT '',
		overall_width      TEXT NOT NULL DEFAULT '',
		overall_depth      TEXT NOT NULL DEFAULT '',
		stories            INTEGER NOT NULL DEFAULT 0,
		bedrooms           INTEGER NOT NULL DEFAULT 0,
		bathrooms          REAL NOT NULL DEFAULT 0,
		garage_bays        INTEGER NOT NULL DEFAULT 0,
		living_area        INTEGER NOT NULL DEFAULT 0,
		total_area         INTEGER NOT NULL DEFAULT 0,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL,
		UNIQUE (plan_name, spec_level, client_subdivision)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plans_plan_name ON plans(plan_name)`,
}

// Migrate creates the plans table and its index when missing.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
