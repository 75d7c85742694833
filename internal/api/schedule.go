package api

import (
	"context"
	"net/http"

	"github.com/SergeyKozhin/presenter-bot/internal/business/calendar"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
	"github.com/SergeyKozhin/presenter-bot/internal/store"
)

// scheduleCalendarHandler publishes the upcoming schedule as an iCalendar feed.
func (a *Api) scheduleCalendarHandler(w http.ResponseWriter, r *http.Request) {
	var upcoming []*model.Event
	err := a.store.InTx(r.Context(), func(ctx context.Context, events store.Events) error {
		var err error
		upcoming, err = events.GetUpcoming(ctx, a.dates.Today())
		return err
	})
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	a.writeText(w, http.StatusOK, "text/calendar; charset=utf-8", calendar.ICS(upcoming, a.dates.Now()))
}
