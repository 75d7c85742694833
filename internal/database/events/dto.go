package events

import (
	"time"

	"github.com/SergeyKozhin/presenter-bot/internal/dates"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
)

type eventDTO struct {
	EventDate time.Time
	EventType string
	Who       *string
	What      *string
}

func mapToEvent(dto *eventDTO) *model.Event {
	return &model.Event{
		When:      dates.Day(dto.EventDate),
		EventType: model.EventType(dto.EventType),
		Who:       dto.Who,
		What:      dto.What,
	}
}
