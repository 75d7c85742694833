package events

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/presenter-bot/internal/database"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
)

func (*Repository) CreateEvent(ctx context.Context, q database.Queryable, event *model.Event) error {
	qb := database.PSQL.
		Insert(database.EventsTable).
		Columns(
			"event_date",
			"event_type",
			"who",
			"what",
		).
		Values(
			event.When,
			string(event.EventType),
			event.Who,
			event.What,
		)

	if _, err := q.Exec(ctx, qb); err != nil {
		if database.IsUniqueViolation(err) {
			return model.ErrAlreadyExists
		}
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
