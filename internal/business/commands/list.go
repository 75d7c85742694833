package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyKozhin/presenter-bot/internal/business/format"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
	"github.com/SergeyKozhin/presenter-bot/internal/store"
)

const NoEventsMessage = "No upcoming events."

func (e *Executor) next(ctx context.Context, events store.Events, _ *Command) (string, error) {
	today := e.dates.Today()

	event, err := events.GetClosest(ctx, today, today)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return NoEventsMessage, nil
		}
		return "", fmt.Errorf("get closest event: %w", err)
	}

	if event.Who == nil {
		return NoEventsMessage, nil
	}

	return format.Event(event), nil
}

func (e *Executor) upcoming(ctx context.Context, events store.Events, _ *Command) (string, error) {
	upcoming, err := events.GetUpcoming(ctx, e.dates.Today())
	if err != nil {
		return "", fmt.Errorf("get upcoming events: %w", err)
	}

	if len(upcoming) == 0 {
		return NoEventsMessage, nil
	}

	lines := make([]string, len(upcoming))
	for i, event := range upcoming {
		lines[i] = ">" + format.Event(event)
	}

	return strings.Join(lines, "\n"), nil
}

func (e *Executor) help(context.Context, store.Events, *Command) (string, error) {
	descriptors := e.catalog.Descriptors()

	lines := make([]string, len(descriptors))
	for i, d := range descriptors {
		lines[i] = fmt.Sprintf("%s\n>%s\n", d.Usage, d.Help)
	}

	return strings.Join(lines, "\n"), nil
}

func (e *Executor) shorthands(context.Context, store.Events, *Command) (string, error) {
	verbs := e.catalog.Verbs()

	lines := make([]string, len(verbs))
	for i, verb := range verbs {
		lines[i] = fmt.Sprintf(">%s: `%s`", verb, e.catalog.Shorthand(verb))
	}

	return strings.Join(lines, "\n"), nil
}
