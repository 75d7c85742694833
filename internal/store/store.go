package store

import (
	"context"
	"time"

	"github.com/SergeyKozhin/presenter-bot/internal/model"
)

// Events is the set of schedule operations available inside a unit of work.
// Lookups that find nothing return model.ErrNoRecord.
type Events interface {
	GetByDate(ctx context.Context, when time.Time) (*model.Event, error)
	GetClosest(ctx context.Context, from, today time.Time) (*model.Event, error)
	GetUpcoming(ctx context.Context, from time.Time) ([]*model.Event, error)
	Insert(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, when time.Time) error
}

// Store runs fn as a single atomic unit of work. The Events handed to fn must
// not be used after fn returns.
type Store interface {
	InTx(ctx context.Context, fn func(ctx context.Context, events Events) error) error
}
