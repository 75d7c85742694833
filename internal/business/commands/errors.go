package commands

import (
	"fmt"
	"time"

	"github.com/SergeyKozhin/presenter-bot/internal/dates"
)

// Kind enumerates the ways a command can be rejected.
type Kind int

const (
	KindUsage Kind = iota + 1
	KindInvalidDate
	KindInvalidEventType
	KindPastDate
	KindEventNotFound
	KindEventAlreadyExists
	KindAlreadyScheduled
	KindAlreadyCancelled
	KindAlreadyCleared
	KindUnknownCommand
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindInvalidDate:
		return "invalid date"
	case KindInvalidEventType:
		return "invalid event type"
	case KindPastDate:
		return "past date"
	case KindEventNotFound:
		return "event not found"
	case KindEventAlreadyExists:
		return "event already exists"
	case KindAlreadyScheduled:
		return "already scheduled"
	case KindAlreadyCancelled:
		return "already cancelled"
	case KindAlreadyCleared:
		return "already cleared"
	case KindUnknownCommand:
		return "unknown command"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a rejected command. Date is set for the date related kinds, Usage
// for KindUsage.
type Error struct {
	Kind  Kind
	Verb  string
	Usage string
	Date  time.Time
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Verb, e.Kind)
	if !e.Date.IsZero() {
		msg += " (" + dates.ISO(e.Date) + ")"
	}
	return msg
}

func newError(kind Kind, cmd *Command) *Error {
	return &Error{Kind: kind, Verb: cmd.Verb}
}

func dateError(kind Kind, cmd *Command, when time.Time) *Error {
	return &Error{Kind: kind, Verb: cmd.Verb, Date: when}
}
