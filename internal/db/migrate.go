package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run
// on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// parent_id has no foreign key: dangling parents must survive so the
	// tree builder can report them as orphans.
	`CREATE TABLE IF NOT EXISTS nodes (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		parent_id  TEXT,
		position   INTEGER NOT NULL DEFAULT 0,
		is_folder  INTEGER NOT NULL DEFAULT 0 CHECK(is_folder IN (0,1)),
		locked     INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_nodes_parent_position ON nodes(parent_id, position)`,

	// Databases created before pinning existed lack the column. On fresh
	// ones this fails with "duplicate column name" and is skipped.
	`ALTER TABLE nodes ADD COLUMN locked INTEGER NOT NULL DEFAULT 0`,
}
