package database

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
DO $$ BEGIN
	CREATE TYPE status AS ENUM ('pending', 'contacted', 'rebooked');
EXCEPTION
	WHEN duplicate_object THEN NULL;
END $$;

CREATE TABLE IF NOT EXISTS patients (
	id INTEGER PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
	name VARCHAR(255) NOT NULL,
	phone VARCHAR(20) NOT NULL UNIQUE,
	missed_date VARCHAR(255) NOT NULL,
	status status NOT NULL DEFAULT 'pending',
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);
`

// EnsureSchema is idempotent and safe to run on every start.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply patients schema: %w", err)
	}
	return nil
}
