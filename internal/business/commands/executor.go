package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyKozhin/presenter-bot/internal/dates"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
	"github.com/SergeyKozhin/presenter-bot/internal/store"
	"go.uber.org/zap"
)

// Executor validates commands against the schedule and applies them. Each
// command runs inside one store unit of work.
type Executor struct {
	logger  *zap.SugaredLogger
	store   store.Store
	dates   *dates.Parser
	catalog *Catalog
}

func NewExecutor(logger *zap.SugaredLogger, st store.Store, parser *dates.Parser) *Executor {
	return &Executor{
		logger:  logger,
		store:   st,
		dates:   parser,
		catalog: DefaultCatalog,
	}
}

func (e *Executor) Catalog() *Catalog {
	return e.catalog
}

// Execute runs cmd and returns the confirmation text. Rejections are *Error.
func (e *Executor) Execute(ctx context.Context, cmd *Command) (string, error) {
	d, ok := e.catalog.Lookup(cmd.Verb)
	if !ok {
		return "", newError(KindUnknownCommand, cmd)
	}
	cmd.Verb = d.Verb

	var res string
	err := e.store.InTx(ctx, func(ctx context.Context, events store.Events) error {
		var err error
		res, err = d.run(e, ctx, events, cmd)
		return err
	})
	if err != nil {
		return "", err
	}

	return res, nil
}

func (e *Executor) usageError(cmd *Command) *Error {
	d, _ := e.catalog.Lookup(cmd.Verb)
	return &Error{Kind: KindUsage, Verb: cmd.Verb, Usage: d.Usage}
}

func (e *Executor) strictDate(cmd *Command) (time.Time, error) {
	when, err := e.dates.Strict(cmd.When)
	if err != nil {
		return time.Time{}, newError(KindInvalidDate, cmd)
	}
	return when, nil
}

func (e *Executor) lenientDate(cmd *Command) (time.Time, error) {
	when, err := e.dates.Lenient(cmd.When)
	if err != nil {
		return time.Time{}, newError(KindInvalidDate, cmd)
	}
	return when, nil
}

func (e *Executor) isPast(when time.Time) bool {
	return when.Before(e.dates.Today())
}

// eventAt returns the event at when, or nil when the date is not in the schedule.
func eventAt(ctx context.Context, events store.Events, when time.Time) (*model.Event, error) {
	event, err := events.GetByDate(ctx, when)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}
