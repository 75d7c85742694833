package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyKozhin/presenter-bot/internal/business/format"
	"github.com/SergeyKozhin/presenter-bot/internal/dates"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
	"github.com/SergeyKozhin/presenter-bot/internal/store"
)

// schedule assigns a presenter to the slot nearest to the requested date.
func (e *Executor) schedule(ctx context.Context, events store.Events, cmd *Command) (string, error) {
	if cmd.Who == "" || cmd.What == "" || cmd.When == "" {
		return "", e.usageError(cmd)
	}

	when, err := e.lenientDate(cmd)
	if err != nil {
		return "", err
	}

	event, err := events.GetClosest(ctx, when, e.dates.Today())
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return "", dateError(KindEventNotFound, cmd, when)
		}
		return "", fmt.Errorf("get closest event: %w", err)
	}

	if e.isPast(event.When) {
		return "", dateError(KindPastDate, cmd, event.When)
	}

	switch {
	case event.Scheduled():
		return "", dateError(KindAlreadyScheduled, cmd, event.When)
	case event.Cancelled():
		return "", dateError(KindAlreadyCancelled, cmd, event.When)
	}

	event.Who = model.StringPtr(cmd.Who)
	event.What = model.StringPtr(cmd.What)
	if err := e.update(ctx, events, cmd, event); err != nil {
		return "", err
	}

	return "Successfully scheduled " + format.Event(event), nil
}

func (e *Executor) cancel(ctx context.Context, events store.Events, cmd *Command) (string, error) {
	if cmd.When == "" || cmd.What == "" {
		return "", e.usageError(cmd)
	}

	when, err := e.lenientDate(cmd)
	if err != nil {
		return "", err
	}

	event, err := eventAt(ctx, events, when)
	if err != nil {
		return "", err
	}
	if event == nil {
		return "", dateError(KindEventNotFound, cmd, when)
	}

	if e.isPast(when) {
		return "", dateError(KindPastDate, cmd, when)
	}

	if event.Cancelled() {
		return "", dateError(KindAlreadyCancelled, cmd, when)
	}

	event.Who = nil
	event.What = model.StringPtr(cmd.What)
	if err := e.update(ctx, events, cmd, event); err != nil {
		return "", err
	}

	return "Successfully cancelled " + format.Event(event), nil
}

func (e *Executor) clear(ctx context.Context, events store.Events, cmd *Command) (string, error) {
	if cmd.When == "" {
		return "", e.usageError(cmd)
	}

	when, err := e.lenientDate(cmd)
	if err != nil {
		return "", err
	}

	event, err := eventAt(ctx, events, when)
	if err != nil {
		return "", err
	}
	if event == nil {
		return "", dateError(KindEventNotFound, cmd, when)
	}

	if e.isPast(when) {
		return "", dateError(KindPastDate, cmd, when)
	}

	if event.Empty() {
		return "", dateError(KindAlreadyCleared, cmd, when)
	}

	event.Who = nil
	event.What = nil
	if err := e.update(ctx, events, cmd, event); err != nil {
		return "", err
	}

	return "Successfully cleared " + dates.Format(when), nil
}

func (e *Executor) update(ctx context.Context, events store.Events, cmd *Command, event *model.Event) error {
	if err := events.Update(ctx, event); err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return dateError(KindEventNotFound, cmd, event.When)
		}
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}
