package importer

import (
	"fmt"
	"time"

	"github.com/SergeyKozhin/presenter-bot/internal/dates"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
	"github.com/teambition/rrule-go"
)

// Weekly returns count empty events of eventType, one week apart, starting at from.
func Weekly(eventType model.EventType, from time.Time, count int) ([]*model.Event, error) {
	if !eventType.Valid() {
		return nil, fmt.Errorf("invalid event type %q", eventType)
	}
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.WEEKLY,
		Count:   count,
		Dtstart: dates.Day(from),
	})
	if err != nil {
		return nil, fmt.Errorf("build weekly rule: %w", err)
	}

	occurrences := r.All()
	events := make([]*model.Event, len(occurrences))
	for i, when := range occurrences {
		events[i] = &model.Event{When: dates.Day(when), EventType: eventType}
	}

	return events, nil
}
