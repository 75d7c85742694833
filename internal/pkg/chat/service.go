package chat

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
	"golang.org/x/time/rate"
)

// Service posts to Slack on behalf of the bot. Calls are throttled so bursts
// of reminders never trip Slack's per-method limits.
type Service struct {
	client  *slack.Client
	limiter *rate.Limiter
}

type Option func(*options)

type options struct {
	apiURL    string
	rateLimit float64
}

// WithAPIURL points the client at another Slack API root, e.g. a test server.
func WithAPIURL(url string) Option {
	return func(o *options) {
		o.apiURL = url
	}
}

// WithRateLimit sets the number of calls allowed per second.
func WithRateLimit(perSecond float64) Option {
	return func(o *options) {
		o.rateLimit = perSecond
	}
}

func NewService(token string, opts ...Option) *Service {
	o := options{rateLimit: 1}
	for _, opt := range opts {
		opt(&o)
	}

	var slackOpts []slack.Option
	if o.apiURL != "" {
		slackOpts = append(slackOpts, slack.OptionAPIURL(o.apiURL))
	}

	limit := rate.Inf
	if o.rateLimit > 0 {
		limit = rate.Limit(o.rateLimit)
	}

	return &Service{
		client:  slack.New(token, slackOpts...),
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (s *Service) PostMessage(ctx context.Context, channel, text string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	if _, _, err := s.client.PostMessageContext(ctx, channel, slack.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("post message: %w", err)
	}

	return nil
}

// PostEphemeral shows text to user only, inside channel.
func (s *Service) PostEphemeral(ctx context.Context, channel, user, text string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	if _, err := s.client.PostEphemeralContext(ctx, channel, user, slack.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("post ephemeral: %w", err)
	}

	return nil
}

func (s *Service) Topic(ctx context.Context, channel string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	info, err := s.client.GetConversationInfoContext(ctx, &slack.GetConversationInfoInput{ChannelID: channel})
	if err != nil {
		return "", fmt.Errorf("get conversation info: %w", err)
	}

	return info.Topic.Value, nil
}

func (s *Service) SetTopic(ctx context.Context, channel, topic string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	if _, err := s.client.SetTopicOfConversationContext(ctx, channel, topic); err != nil {
		return fmt.Errorf("set topic: %w", err)
	}

	return nil
}
