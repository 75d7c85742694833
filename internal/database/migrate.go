package database

import (
	"context"
	"fmt"
)

const createEventsTable = `
CREATE TABLE IF NOT EXISTS ` + EventsTable + ` (
	event_date date PRIMARY KEY,
	event_type text NOT NULL,
	who        text,
	what       text
)`

// Migrate creates the schema when it is missing.
func Migrate(ctx context.Context, q Queryable) error {
	if _, err := q.ExecRaw(ctx, createEventsTable); err != nil {
		return fmt.Errorf("create %s table: %w", EventsTable, err)
	}

	return nil
}
