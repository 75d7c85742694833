package notifications

import (
	"fmt"
	"time"

	"github.com/SergeyKozhin/presenter-bot/internal/business/format"
	"github.com/SergeyKozhin/presenter-bot/internal/dates"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
)

// NoPresentationTopic is the channel topic while nobody is up next.
const NoPresentationTopic = "No presentation scheduled."

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionNextEvent
	ActionCallToAction
)

// Action is what a reminder tick should post, if anything.
type Action struct {
	Kind    ActionKind
	Event   *model.Event
	Horizon string
}

const (
	horizonWeek    = "in one week"
	horizonTonight = "tonight"
)

// Decide picks the reminder for the nearest upcoming event.
func Decide(event *model.Event, today time.Time) Action {
	if event == nil {
		return Action{Kind: ActionNone}
	}

	daysLeft := dates.DaysBetween(today, event.When)

	switch {
	case event.Who != nil:
		if daysLeft < 7 {
			return Action{Kind: ActionNextEvent, Event: event}
		}
	case event.What != nil:
		// cancelled
	case daysLeft > 14:
	case daysLeft > 7:
		return Action{Kind: ActionCallToAction, Event: event, Horizon: horizonWeek}
	default:
		return Action{Kind: ActionCallToAction, Event: event, Horizon: horizonTonight}
	}

	return Action{Kind: ActionNone}
}

// Message renders the text posted for a.
func (a Action) Message() string {
	switch a.Kind {
	case ActionNextEvent:
		return "Reminder: " + format.Event(a.Event)
	case ActionCallToAction:
		return fmt.Sprintf("No one is scheduled for the next presentation (%s). The due date is *%s* at 23:59.",
			format.Date(a.Event), a.Horizon)
	default:
		return ""
	}
}

// ExpectedTopic is the channel topic matching the nearest upcoming event.
func ExpectedTopic(event *model.Event) string {
	if event == nil || event.Who == nil {
		return NoPresentationTopic
	}
	return format.Event(event)
}
