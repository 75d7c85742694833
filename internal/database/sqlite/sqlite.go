package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/presenter-bot/internal/dates"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
	"github.com/SergeyKozhin/presenter-bot/internal/store"
	"github.com/georgysavva/scany/sqlscan"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const eventsTable = "events"

// Dates are stored as yyyy-mm-dd text so that ordering stays lexicographic.
const schema = `
CREATE TABLE IF NOT EXISTS ` + eventsTable + ` (
	event_date TEXT PRIMARY KEY,
	event_type TEXT NOT NULL,
	who        TEXT,
	what       TEXT
)`

var baseQuery = sq.
	Select("event_date", "event_type", "who", "what").
	From(eventsTable)

// Store keeps the schedule in a SQLite file. The pool is limited to one
// connection, so each unit of work owns the database while it runs.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path. Use ":memory:" for a
// throwaway database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, events store.Events) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(ctx, &txEvents{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

type eventDTO struct {
	EventDate string
	EventType string
	Who       *string
	What      *string
}

func mapToEvent(dto *eventDTO) (*model.Event, error) {
	when, err := dates.ParseISO(dto.EventDate)
	if err != nil {
		return nil, fmt.Errorf("stored date: %w", err)
	}

	return &model.Event{
		When:      when,
		EventType: model.EventType(dto.EventType),
		Who:       dto.Who,
		What:      dto.What,
	}, nil
}

type txEvents struct {
	tx *sql.Tx
}

func (t *txEvents) GetByDate(ctx context.Context, when time.Time) (*model.Event, error) {
	return t.first(ctx, baseQuery.Where(sq.Eq{"event_date": dates.ISO(when)}))
}

func (t *txEvents) GetClosest(ctx context.Context, from, today time.Time) (*model.Event, error) {
	upper, err := t.first(ctx, baseQuery.
		Where(sq.GtOrEq{"event_date": dates.ISO(from)}).
		OrderBy("event_date ASC"))
	if err != nil && !errors.Is(err, model.ErrNoRecord) {
		return nil, err
	}

	lower, err := t.first(ctx, baseQuery.
		Where(sq.GtOrEq{"event_date": dates.ISO(today)}).
		Where(sq.LtOrEq{"event_date": dates.ISO(from)}).
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

func (t *txEvents) GetUpcoming(ctx context.Context, from time.Time) ([]*model.Event, error) {
	return t.selectEvents(ctx, baseQuery.
		Where(sq.GtOrEq{"event_date": dates.ISO(from)}).
		OrderBy("event_date ASC"))
}

func (t *txEvents) Insert(ctx context.Context, event *model.Event) error {
	qb := sq.
		Insert(eventsTable).
		Columns("event_date", "event_type", "who", "what").
		Values(dates.ISO(event.When), string(event.EventType), event.Who, event.What)

	if _, err := t.exec(ctx, qb); err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
			return model.ErrAlreadyExists
		}
		return err
	}

	return nil
}

func (t *txEvents) Update(ctx context.Context, event *model.Event) error {
	qb := sq.
		Update(eventsTable).
		Set("who", event.Who).
		Set("what", event.What).
		Where(sq.Eq{"event_date": dates.ISO(event.When)})

	return t.execOne(ctx, qb)
}

func (t *txEvents) Delete(ctx context.Context, when time.Time) error {
	qb := sq.
		Delete(eventsTable).
		Where(sq.Eq{"event_date": dates.ISO(when)})

	return t.execOne(ctx, qb)
}

func (t *txEvents) first(ctx context.Context, qb sq.SelectBuilder) (*model.Event, error) {
	events, err := t.selectEvents(ctx, qb.Limit(1))
	if err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return nil, model.ErrNoRecord
	}

	return events[0], nil
}

func (t *txEvents) selectEvents(ctx context.Context, qb sq.SelectBuilder) ([]*model.Event, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ToSql: %w", err)
	}

	var dtos []*eventDTO
	if err := sqlscan.Select(ctx, t.tx, &dtos, query, args...); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Event, len(dtos))
	for i, d := range dtos {
		if res[i], err = mapToEvent(d); err != nil {
			return nil, err
		}
	}

	return res, nil
}

type sqlizer interface {
	ToSql() (string, []interface{}, error)
}

func (t *txEvents) exec(ctx context.Context, qb sqlizer) (sql.Result, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ToSql: %w", err)
	}

	res, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return res, nil
}

func (t *txEvents) execOne(ctx context.Context, qb sqlizer) error {
	res, err := t.exec(ctx, qb)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if n == 0 {
		return model.ErrNoRecord
	}

	return nil
}
