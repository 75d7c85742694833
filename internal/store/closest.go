package store

import (
	"time"

	"github.com/SergeyKozhin/presenter-bot/internal/model"
)

// Nearest picks the event closest to from. On equal distance the later event
// wins, so a slot still ahead is preferred over one already behind the query.
func Nearest(events []*model.Event, from time.Time) *model.Event {
	var best *model.Event
	var bestDist time.Duration

	for _, e := range events {
		if e == nil {
			continue
		}

		dist := e.When.Sub(from)
		if dist < 0 {
			dist = -dist
		}

		if best == nil || dist < bestDist || (dist == bestDist && e.When.After(best.When)) {
			best = e
			bestDist = dist
		}
	}

	return best
}
