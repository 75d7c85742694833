package events

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyKozhin/presenter-bot/internal/database"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
	"github.com/SergeyKozhin/presenter-bot/internal/store"
)

// Store runs schedule units of work in postgres transactions holding the
// schedule advisory lock.
type Store struct {
	db   database.PGX
	repo *Repository
}

func NewStore(db database.PGX, repo *Repository) *Store {
	return &Store{db: db, repo: repo}
}

func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, events store.Events) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := database.LockSchedule(ctx, tx); err != nil {
		return err
	}

	if err := fn(ctx, &txEvents{repo: s.repo, q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// txEvents binds the repository to one transaction.
type txEvents struct {
	repo *Repository
	q    database.Queryable
}

func (t *txEvents) GetByDate(ctx context.Context, when time.Time) (*model.Event, error) {
	return t.repo.GetEventByDate(ctx, t.q, when)
}

func (t *txEvents) GetClosest(ctx context.Context, from, today time.Time) (*model.Event, error) {
	return t.repo.GetClosestEvent(ctx, t.q, from, today)
}

func (t *txEvents) GetUpcoming(ctx context.Context, from time.Time) ([]*model.Event, error) {
	return t.repo.GetUpcomingEvents(ctx, t.q, from)
}

func (t *txEvents) Insert(ctx context.Context, event *model.Event) error {
	return t.repo.CreateEvent(ctx, t.q, event)
}

func (t *txEvents) Update(ctx context.Context, event *model.Event) error {
	return t.repo.UpdateEvent(ctx, t.q, event)
}

func (t *txEvents) Delete(ctx context.Context, when time.Time) error {
	return t.repo.DeleteEvent(ctx, t.q, when)
}
