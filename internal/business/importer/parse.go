package importer

import (
	"fmt"
	"io"
	"sort"

	"github.com/SergeyKozhin/presenter-bot/internal/dates"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
	"gopkg.in/yaml.v3"
)

// record is one value of the schedule file, keyed by its date:
//
//	2020-05-07:
//	  event: fagdag
//	  who: Ada
//	  what: Engines
type record struct {
	Event string  `yaml:"event"`
	Who   *string `yaml:"who"`
	What  *string `yaml:"what"`
}

// ParseYAML reads a schedule file. Events are returned in date order.
func ParseYAML(r io.Reader) ([]*model.Event, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return []*model.Event{}, nil
		}
		return nil, fmt.Errorf("decode schedule: %w", err)
	}

	if len(doc.Content) == 0 {
		return []*model.Event{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: schedule must be a mapping of dates", root.Line)
	}

	events := make([]*model.Event, 0, len(root.Content)/2)
	seen := make(map[string]struct{}, len(root.Content)/2)

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		when, err := dates.ParseISO(key.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", key.Line, err)
		}
		if _, ok := seen[key.Value]; ok {
			return nil, fmt.Errorf("line %d: duplicate date %s", key.Line, key.Value)
		}
		seen[key.Value] = struct{}{}

		var rec record
		if err := value.Decode(&rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", value.Line, err)
		}

		eventType := model.EventType(rec.Event)
		if !eventType.Valid() {
			return nil, fmt.Errorf("line %d: invalid event type %q", value.Line, rec.Event)
		}

		event := &model.Event{
			When:      when,
			EventType: eventType,
			Who:       nonEmpty(rec.Who),
			What:      nonEmpty(rec.What),
		}
		if !event.Empty() && !event.Cancelled() && !event.Scheduled() {
			return nil, fmt.Errorf("line %d: %s has a presenter but no topic", value.Line, key.Value)
		}

		events = append(events, event)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].When.Before(events[j].When)
	})

	return events, nil
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	return model.StringPtr(*s)
}
