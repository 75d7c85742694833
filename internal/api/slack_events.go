package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SergeyKozhin/presenter-bot/internal/business/commands"
	"github.com/slack-go/slack/slackevents"
)

const mentionTimeout = 30 * time.Second

// retryHeader is set by Slack on redeliveries of an event it already sent.
const retryHeader = "X-Slack-Retry-Num"

// slackEventsHandler answers the Events API. Mentions of the bot are run as
// commands once the request is acknowledged. Errors go to the mentioning user
// only, everything else to the channel.
func (a *Api) slackEventsHandler(w http.ResponseWriter, r *http.Request) {
	if retry := r.Header.Get(retryHeader); retry != "" {
		a.logger.Debugw("ignored slack retry", "retry", retry, "reason", r.Header.Get("X-Slack-Retry-Reason"))
		w.WriteHeader(http.StatusOK)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		a.badRequestResponse(w, r, fmt.Errorf("read body: %w", err))
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		a.badRequestResponse(w, r, fmt.Errorf("parse event: %w", err))
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("parse challenge: %w", err))
			return
		}
		a.writeText(w, http.StatusOK, "text/plain", challenge.Challenge)

	case slackevents.CallbackEvent:
		if mention, ok := event.InnerEvent.Data.(*slackevents.AppMentionEvent); ok {
			go a.handleMention(mention.Channel, mention.User, mention.Text)
		}
		w.WriteHeader(http.StatusOK)

	default:
		a.logger.Debugw("ignored slack event", "type", event.Type)
		w.WriteHeader(http.StatusOK)
	}
}

func (a *Api) handleMention(channel, user, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), mentionTimeout)
	defer cancel()

	res := a.commands.Handle(ctx, stripMentions(text), false)
	if res.ResponseType == commands.ResponseEphemeral {
		a.notifier.NotifyUser(ctx, channel, user, res.Text)
		return
	}

	a.notifier.Notify(ctx, channel, res.Text)
}

// stripMentions drops the leading <@U123> tokens addressing the bot.
func stripMentions(text string) string {
	fields := strings.Fields(text)
	for len(fields) > 0 && strings.HasPrefix(fields[0], "<@") && strings.HasSuffix(fields[0], ">") {
		fields = fields[1:]
	}
	return strings.Join(fields, " ")
}
