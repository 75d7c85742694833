package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyKozhin/presenter-bot/internal/dates"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
	"github.com/SergeyKozhin/presenter-bot/internal/store"
)

func (e *Executor) remove(ctx context.Context, events store.Events, cmd *Command) (string, error) {
	if cmd.When == "" {
		return "", e.usageError(cmd)
	}

	when, err := e.strictDate(cmd)
	if err != nil {
		return "", err
	}

	if e.isPast(when) {
		return "", dateError(KindPastDate, cmd, when)
	}

	if err := events.Delete(ctx, when); err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return "", dateError(KindEventNotFound, cmd, when)
		}
		return "", fmt.Errorf("delete event: %w", err)
	}

	return fmt.Sprintf("%s successfully removed from the schedule.", dates.Format(when)), nil
}
