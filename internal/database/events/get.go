package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/presenter-bot/internal/database"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
	"github.com/SergeyKozhin/presenter-bot/internal/store"
	"github.com/jackc/pgx/v4"
)

func (*Repository) GetEventByDate(ctx context.Context, q database.Queryable, when time.Time) (*model.Event, error) {
	qb := baseQuery.
		Where(sq.Eq{"event_date": when})

	dto := &eventDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToEvent(dto), nil
}

// GetClosestEvent compares the first event on or after from with the last one
// between today and from.
func (*Repository) GetClosestEvent(ctx context.Context, q database.Queryable, from, today time.Time) (*model.Event, error) {
	upper, err := getFirst(ctx, q, baseQuery.
		Where(sq.GtOrEq{"event_date": from}).
		OrderBy("event_date ASC"))
	if err != nil && !errors.Is(err, model.ErrNoRecord) {
		return nil, err
	}

	lower, err := getFirst(ctx, q, baseQuery.
		Where(sq.GtOrEq{"event_date": today}).
		Where(sq.LtOrEq{"event_date": from}).
		OrderBy("event_date DESC"))
	if err != nil && !errors.Is(err, model.ErrNoRecord) {
		return nil, err
	}

	closest := store.Nearest([]*model.Event{lower, upper}, from)
	if closest == nil {
		return nil, model.ErrNoRecord
	}

	return closest, nil
}

func (*Repository) GetUpcomingEvents(ctx context.Context, q database.Queryable, from time.Time) ([]*model.Event, error) {
	qb := baseQuery.
		Where(sq.GtOrEq{"event_date": from}).
		OrderBy("event_date ASC")

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Event, len(dtos))
	for i, d := range dtos {
		res[i] = mapToEvent(d)
	}

	return res, nil
}

func getFirst(ctx context.Context, q database.Queryable, qb sq.SelectBuilder) (*model.Event, error) {
	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb.Limit(1)); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	if len(dtos) == 0 {
		return nil, model.ErrNoRecord
	}

	return mapToEvent(dtos[0]), nil
}
