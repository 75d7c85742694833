package calendar

import (
	"time"

	"github.com/SergeyKozhin/presenter-bot/internal/dates"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
	ical "github.com/arran4/golang-ical"
)

const productID = "-//presenter-bot//schedule//EN"

// ICS renders the schedule as an iCalendar feed of all-day events.
func ICS(events []*model.Event, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetName("Presentations")

	for _, e := range events {
		ev := cal.AddEvent(dates.ISO(e.When) + "@presenter-bot")
		ev.SetDtStampTime(stamp)
		ev.SetAllDayStartAt(e.When)
		ev.SetAllDayEndAt(e.When.AddDate(0, 0, 1))
		ev.SetSummary(summary(e))
		if e.What != nil {
			ev.SetDescription(*e.What)
		}
	}

	return cal.Serialize()
}

func summary(e *model.Event) string {
	switch {
	case e.Scheduled():
		return *e.What + " (" + *e.Who + ")"
	case e.Cancelled():
		return "Cancelled: " + *e.What
	default:
		return "No presentation scheduled (" + string(e.EventType) + ")"
	}
}
