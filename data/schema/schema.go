// Package schema bootstraps the notes table and its composite index.
//
// The (created_at desc, id asc) index is not an optimization detail:
// the keyset list query in data/repository relies on it to satisfy the
// seek predicate with a single index range scan.
package schema

import (
	"context"
	"database/sql"
	"fmt"
)

var statements = map[string][]string{
	"sqlite": {
		`CREATE TABLE IF NOT EXISTS notes (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			content    TEXT NOT NULL DEFAULT '',
			slug       TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_created_at_id
			ON notes (created_at DESC, id ASC)`,
	},
	"postgres": {
		`CREATE TABLE IF NOT EXISTS notes (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			content    TEXT NOT NULL DEFAULT '',
			slug       TEXT NOT NULL DEFAULT '',
			created_at BIGINT NOT NULL,
			updated_at BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_created_at_id
			ON notes (created_at DESC, id ASC)`,
	},
	// MySQL has no CREATE INDEX IF NOT EXISTS, so the index is declared
	// inline with the table.
	"mysql": {
		`CREATE TABLE IF NOT EXISTS notes (
			id         VARCHAR(36) PRIMARY KEY,
			title      VARCHAR(255) NOT NULL,
			content    TEXT NOT NULL,
			slug       VARCHAR(255) NOT NULL DEFAULT '',
			created_at BIGINT NOT NULL,
			updated_at BIGINT NOT NULL,
			INDEX idx_notes_created_at_id (created_at DESC, id ASC)
		)`,
	},
}

// Apply creates the notes schema for the given driver if it does not
// already exist.
func Apply(ctx context.Context, db *sql.DB, driver string) error {
	stmts, ok := statements[driver]
	if !ok {
		return fmt.Errorf("schema: no schema defined for driver %q", driver)
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema: apply failed: %w", err)
		}
	}
	return nil
}
