package model

import "time"

type EventType string

const (
	EventTypeFagdag    EventType = "fagdag"
	EventTypeFormiddag EventType = "formiddag"
)

// EventTypes is the allow-list checked when a date is added.
var EventTypes = []EventType{EventTypeFagdag, EventTypeFormiddag}

func (t EventType) Valid() bool {
	for _, et := range EventTypes {
		if et == t {
			return true
		}
	}
	return false
}

// Event is one presentation slot. When is a calendar date at midnight UTC and
// is unique across the schedule.
type Event struct {
	When      time.Time
	EventType EventType
	Who       *string
	What      *string
}

// Scheduled reports whether both a presenter and a topic are set.
func (e *Event) Scheduled() bool {
	return e.Who != nil && e.What != nil
}

// Cancelled reports whether the event carries a reason but no presenter.
func (e *Event) Cancelled() bool {
	return e.What != nil && e.Who == nil
}

// Empty reports whether neither presenter nor topic is set.
func (e *Event) Empty() bool {
	return e.What == nil && e.Who == nil
}

// StringPtr returns nil for an empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
