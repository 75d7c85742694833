package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyKozhin/presenter-bot/internal/dates"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
	"github.com/SergeyKozhin/presenter-bot/internal/store"
	"go.uber.org/zap"
)

type chatService interface {
	PostMessage(ctx context.Context, channel, text string) error
	PostEphemeral(ctx context.Context, channel, user, text string) error
	Topic(ctx context.Context, channel string) (string, error)
	SetTopic(ctx context.Context, channel, topic string) error
}

// Sender runs the reminder and topic jobs against one channel.
type Sender struct {
	logger  *zap.SugaredLogger
	store   store.Store
	dates   *dates.Parser
	chat    chatService
	channel string
}

func NewSender(
	logger *zap.SugaredLogger,
	st store.Store,
	parser *dates.Parser,
	chat chatService,
	channel string,
) *Sender {
	return &Sender{
		logger:  logger,
		store:   st,
		dates:   parser,
		chat:    chat,
		channel: channel,
	}
}

// SendReminder posts the reminder for the nearest upcoming event, if one is due.
// Slack failures are logged only.
func (s *Sender) SendReminder(ctx context.Context) (Action, error) {
	today := s.dates.Today()

	event, err := s.nearestEvent(ctx, today)
	if err != nil {
		return Action{}, err
	}

	action := Decide(event, today)
	if action.Kind == ActionNone {
		s.logger.Debugw("no reminder due", "today", dates.ISO(today))
		return action, nil
	}

	if err := s.chat.PostMessage(ctx, s.channel, action.Message()); err != nil {
		s.logger.Errorw("failed to post reminder", "channel", s.channel, "err", err)
		return action, nil
	}

	s.logger.Infow("posted reminder", "channel", s.channel, "date", dates.ISO(action.Event.When))
	return action, nil
}

// SyncTopic updates the channel topic when it no longer matches the schedule.
// It reports whether a new topic was written.
func (s *Sender) SyncTopic(ctx context.Context) (bool, error) {
	event, err := s.nearestEvent(ctx, s.dates.Today())
	if err != nil {
		return false, err
	}

	expected := ExpectedTopic(event)

	current, err := s.chat.Topic(ctx, s.channel)
	if err != nil {
		s.logger.Errorw("failed to read topic", "channel", s.channel, "err", err)
		return false, nil
	}
	if current == expected {
		return false, nil
	}

	if err := s.chat.SetTopic(ctx, s.channel, expected); err != nil {
		s.logger.Errorw("failed to set topic", "channel", s.channel, "err", err)
		return false, nil
	}

	s.logger.Infow("updated topic", "channel", s.channel, "topic", expected)
	return true, nil
}

// Notify posts text to the bot channel, logging failures.
func (s *Sender) Notify(ctx context.Context, channel, text string) {
	if channel == "" {
		channel = s.channel
	}

	if err := s.chat.PostMessage(ctx, channel, text); err != nil {
		s.logger.Errorw("failed to post message", "channel", channel, "err", err)
	}
}

// NotifyUser shows text to user only. Without a user it falls back to Notify.
func (s *Sender) NotifyUser(ctx context.Context, channel, user, text string) {
	if user == "" {
		s.Notify(ctx, channel, text)
		return
	}
	if channel == "" {
		channel = s.channel
	}

	if err := s.chat.PostEphemeral(ctx, channel, user, text); err != nil {
		s.logger.Errorw("failed to post ephemeral message", "channel", channel, "user", user, "err", err)
	}
}

func (s *Sender) nearestEvent(ctx context.Context, today time.Time) (*model.Event, error) {
	var event *model.Event
	err := s.store.InTx(ctx, func(ctx context.Context, events store.Events) error {
		var err error
		event, err = events.GetClosest(ctx, today, today)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return nil, nil
		}
		return nil, fmt.Errorf("get closest event: %w", err)
	}

	return event, nil
}
