package format

import (
	"fmt"

	"github.com/SergeyKozhin/presenter-bot/internal/dates"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
)

const fagdagTag = " :busts_in_silhouette: Fagdag"

// Date renders a date the way every bot message shows it.
func Date(e *model.Event) string {
	return dates.Format(e.When)
}

// Event renders one schedule slot in Slack mrkdwn.
func Event(e *model.Event) string {
	var response string

	switch {
	case e.What == nil:
		response = fmt.Sprintf("*%s*: No presentation scheduled.", Date(e))
	case e.Who == nil:
		return fmt.Sprintf("*%s*: Event is cancelled due to %s!", Date(e), *e.What)
	default:
		response = fmt.Sprintf("*%s*: Presentation *%s* by *%s*.", Date(e), *e.What, *e.Who)
	}

	if e.EventType == model.EventTypeFagdag {
		response += fagdagTag
	}

	return response
}
