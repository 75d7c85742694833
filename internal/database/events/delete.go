package events

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/presenter-bot/internal/database"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
)

func (*Repository) DeleteEvent(ctx context.Context, q database.Queryable, when time.Time) error {
	qb := database.PSQL.
		Delete(database.EventsTable).
		Where(sq.Eq{"event_date": when})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}
