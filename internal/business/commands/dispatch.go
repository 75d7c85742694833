package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type ResponseType string

const (
	ResponseEphemeral ResponseType = "ephemeral"
	ResponseInChannel ResponseType = "in_channel"
)

// Response is what the transport sends back for one command.
type Response struct {
	Text         string
	ResponseType ResponseType
}

const (
	invalidDateMessage      = "Error: Unable to parse date."
	existingDateMessage     = "Error: Date already in schedule"
	pastDateMessage         = "Error: Date is in the past."
	missingDateMessage      = "Error: The specified date is not in the schedule. Use the `add` command if you want to add a new date."
	alreadyCancelledMessage = "Error: This event has (already) been cancelled."
	alreadyClearedMessage   = "Error: This event is already empty."
	alreadyScheduledMessage = "Error: A presentation has already been scheduled on this date."
	serverErrorMessage      = "Sorry, something went wrong while handling your command. Please try again later."
)

// Handle parses and executes one command line. Rejections and failures are
// turned into canned, ephemeral answers; silent is the transport's own view of
// the --silent flag.
func (e *Executor) Handle(ctx context.Context, text string, silent bool) Response {
	cmd, err := Parse(text)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			return ephemeral(fmt.Sprintf("Error: %s\nUsage: %s", parseErr.Message, Usage))
		}
		e.logger.Errorw("failed to parse command", "text", text, "err", err)
		return ephemeral(serverErrorMessage)
	}
	cmd.Silent = cmd.Silent || silent

	text, err = e.Execute(ctx, cmd)
	if err != nil {
		var cmdErr *Error
		if errors.As(err, &cmdErr) {
			e.logger.Debugw("command rejected", "verb", cmdErr.Verb, "kind", cmdErr.Kind.String())
			return ephemeral(e.Message(cmdErr))
		}
		e.logger.Errorw("failed to execute command", "verb", cmd.Verb, "err", err)
		return ephemeral(serverErrorMessage)
	}

	if cmd.Silent {
		return ephemeral(text)
	}
	return Response{Text: text, ResponseType: ResponseInChannel}
}

// Message returns the user facing text for a rejected command.
func (e *Executor) Message(err *Error) string {
	switch err.Kind {
	case KindUsage:
		return fmt.Sprintf("Incorrect use of command. Usage: %s", err.Usage)
	case KindInvalidDate:
		return invalidDateMessage
	case KindInvalidEventType:
		return "Error: Invalid event. Try one of " + eventTypeList()
	case KindPastDate:
		return pastDateMessage
	case KindEventNotFound:
		return missingDateMessage
	case KindEventAlreadyExists:
		return existingDateMessage
	case KindAlreadyScheduled:
		return alreadyScheduledMessage
	case KindAlreadyCancelled:
		return alreadyCancelledMessage
	case KindAlreadyCleared:
		return alreadyClearedMessage
	case KindUnknownCommand:
		return fmt.Sprintf("Sorry. Try one of these: *%s*.", strings.Join(e.catalog.Verbs(), ", "))
	default:
		e.logger.Errorw("unhandled error kind", "kind", err.Kind.String())
		return serverErrorMessage
	}
}

func ephemeral(text string) Response {
	return Response{Text: text, ResponseType: ResponseEphemeral}
}
