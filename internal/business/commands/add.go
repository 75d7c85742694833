package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyKozhin/presenter-bot/internal/dates"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
	"github.com/SergeyKozhin/presenter-bot/internal/store"
)

func (e *Executor) add(ctx context.Context, events store.Events, cmd *Command) (string, error) {
	if cmd.Event == "" || cmd.When == "" {
		return "", e.usageError(cmd)
	}

	eventType := model.EventType(cmd.Event)
	if !eventType.Valid() {
		return "", newError(KindInvalidEventType, cmd)
	}

	when, err := e.strictDate(cmd)
	if err != nil {
		return "", err
	}

	if e.isPast(when) {
		return "", dateError(KindPastDate, cmd, when)
	}

	existing, err := eventAt(ctx, events, when)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", dateError(KindEventAlreadyExists, cmd, when)
	}

	if err := events.Insert(ctx, &model.Event{When: when, EventType: eventType}); err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			return "", dateError(KindEventAlreadyExists, cmd, when)
		}
		return "", fmt.Errorf("insert event: %w", err)
	}

	return fmt.Sprintf("%s successfully added to the schedule.", dates.Format(when)), nil
}
