package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/presenter-bot/internal/database"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
)

// UpdateEvent writes who and what. The event type never changes after creation.
func (*Repository) UpdateEvent(ctx context.Context, q database.Queryable, event *model.Event) error {
	qb := database.PSQL.
		Update(database.EventsTable).
		SetMap(map[string]interface{}{
			"who":  event.Who,
			"what": event.What,
		}).
		Where(sq.Eq{"event_date": event.When})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}
