package database

import (
	"context"
	"fmt"
)

// ScheduleLockKey identifies the advisory lock serializing schedule writes.
const ScheduleLockKey int64 = 0x70726573

// LockSchedule takes a transaction scoped advisory lock. It is released on
// commit or rollback.
func LockSchedule(ctx context.Context, tx Tx) error {
	if _, err := tx.ExecRaw(ctx, "SELECT pg_advisory_xact_lock($1)", ScheduleLockKey); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}

	return nil
}
