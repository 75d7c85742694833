package store

import (
	"testing"
	"time"

	"github.com/SergeyKozhin/presenter-bot/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNearest(t *testing.T) {
	var events []*model.Event
	for _, d := range []time.Time{
		date(2020, 5, 7),
		date(2020, 2, 27),
		date(2020, 4, 10),
		date(2020, 5, 8),
		date(2020, 5, 5),
		date(2020, 10, 8),
	} {
		events = append(events, &model.Event{When: d, EventType: model.EventTypeFagdag})
	}

	tests := []struct {
		from     time.Time
		expected time.Time
	}{
		// 05-05 and 05-07 are both one day away; the later one wins.
		{date(2020, 5, 6), date(2020, 5, 7)},
		{date(2020, 5, 7), date(2020, 5, 7)},
		{date(2020, 5, 9), date(2020, 5, 8)},
		{date(2020, 6, 6), date(2020, 5, 8)},
		{date(2020, 8, 28), date(2020, 10, 8)},
		{date(2020, 11, 11), date(2020, 10, 8)},
		{date(2030, 11, 11), date(2020, 10, 8)},
		{date(2019, 11, 11), date(2020, 2, 27)},
	}

	for _, tt := range tests {
		t.Run(tt.from.Format("2006-01-02"), func(t *testing.T) {
			got := Nearest(events, tt.from)
			if got == nil {
				t.Fatal("Nearest() = nil")
			}
			if !got.When.Equal(tt.expected) {
				t.Errorf("Nearest() = %v, want %v", got.When, tt.expected)
			}
		})
	}
}

func TestNearestTieIsOrderIndependent(t *testing.T) {
	before := &model.Event{When: date(2020, 5, 5)}
	after := &model.Event{When: date(2020, 5, 7)}

	for _, events := range [][]*model.Event{{before, after}, {after, before}} {
		if got := Nearest(events, date(2020, 5, 6)); got != after {
			t.Errorf("Nearest() = %v, want %v", got.When, after.When)
		}
	}
}

func TestNearestEmpty(t *testing.T) {
	if got := Nearest(nil, date(2020, 1, 1)); got != nil {
		t.Errorf("Nearest(nil) = %v, want nil", got)
	}
	if got := Nearest([]*model.Event{nil, nil}, date(2020, 1, 1)); got != nil {
		t.Errorf("Nearest(nils) = %v, want nil", got)
	}
}
