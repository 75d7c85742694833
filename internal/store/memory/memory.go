package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SergeyKozhin/presenter-bot/internal/model"
	"github.com/SergeyKozhin/presenter-bot/internal/store"
)

// Store keeps the schedule in process memory. A unit of work holds the store
// mutex for its whole duration.
type Store struct {
	mu     sync.Mutex
	events map[int64]model.Event
}

func NewStore() *Store {
	return &Store{events: make(map[int64]model.Event)}
}

func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, events store.Events) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	// Writes are staged on a copy and only published when fn succeeds.
	staged := make(map[int64]model.Event, len(s.events))
	for k, v := range s.events {
		staged[k] = v
	}

	if err := fn(ctx, &tx{events: staged}); err != nil {
		return err
	}

	s.events = staged
	return nil
}

type tx struct {
	events map[int64]model.Event
}

func (t *tx) GetByDate(_ context.Context, when time.Time) (*model.Event, error) {
	e, ok := t.events[when.Unix()]
	if !ok {
		return nil, model.ErrNoRecord
	}
	return &e, nil
}

func (t *tx) GetClosest(_ context.Context, from, today time.Time) (*model.Event, error) {
	var upper, lower *model.Event
	for _, e := range t.sorted() {
		if !e.When.Before(from) && upper == nil {
			upper = e
		}
		if !e.When.Before(today) && !e.When.After(from) {
			lower = e
		}
	}

	closest := store.Nearest([]*model.Event{lower, upper}, from)
	if closest == nil {
		return nil, model.ErrNoRecord
	}
	return closest, nil
}

func (t *tx) GetUpcoming(_ context.Context, from time.Time) ([]*model.Event, error) {
	res := make([]*model.Event, 0)
	for _, e := range t.sorted() {
		if !e.When.Before(from) {
			res = append(res, e)
		}
	}
	return res, nil
}

func (t *tx) Insert(_ context.Context, event *model.Event) error {
	if _, ok := t.events[event.When.Unix()]; ok {
		return model.ErrAlreadyExists
	}
	t.events[event.When.Unix()] = *event
	return nil
}

func (t *tx) Update(_ context.Context, event *model.Event) error {
	old, ok := t.events[event.When.Unix()]
	if !ok {
		return model.ErrNoRecord
	}
	old.Who = event.Who
	old.What = event.What
	t.events[event.When.Unix()] = old
	return nil
}

func (t *tx) Delete(_ context.Context, when time.Time) error {
	if _, ok := t.events[when.Unix()]; !ok {
		return model.ErrNoRecord
	}
	delete(t.events, when.Unix())
	return nil
}

func (t *tx) sorted() []*model.Event {
	res := make([]*model.Event, 0, len(t.events))
	for _, e := range t.events {
		e := e
		res = append(res, &e)
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].When.Before(res[j].When)
	})

	return res
}
