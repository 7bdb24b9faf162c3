package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchIndexes creates full-text GIN indexes that the migration SQL
// does not express. They back audit queries over captured output and task
// text.
func CreateSearchIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_captured_steps_output_gin
		ON captured_steps USING gin(to_tsvector('english', output))`)
	if err != nil {
		return fmt.Errorf("failed to create captured step output index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_task_runs_task_gin
		ON task_runs USING gin(to_tsvector('english', task))`)
	if err != nil {
		return fmt.Errorf("failed to create task text index: %w", err)
	}
	return nil
}
