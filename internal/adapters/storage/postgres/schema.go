package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema: una sentencia por Exec.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS readings (
		id          TEXT PRIMARY KEY,
		kind        TEXT NOT NULL,
		subject     TEXT NOT NULL,
		zodiac_sign TEXT NULL,
		prompt      TEXT NOT NULL,
		raw         TEXT NOT NULL,
		html        TEXT NOT NULL,
		model       TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS readings_created_at_idx ON readings (created_at DESC)`,
}

// Migrate crea la tabla de lecturas si no existe.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}
