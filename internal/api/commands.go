package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/SergeyKozhin/presenter-bot/internal/business/commands"
	"github.com/slack-go/slack"
)

func (a *Api) commandHandler(w http.ResponseWriter, r *http.Request) {
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		a.badRequestResponse(w, r, fmt.Errorf("parse slash command: %w", err))
		return
	}

	a.logger.Debugw("slash command", "user", s.UserName, "channel", s.ChannelID, "text", s.Text)

	a.respond(w, r, a.commands.Handle(r.Context(), s.Text, false))
}

// verbHandler serves endpoints bound to a single verb. Any text sent along is
// passed as that verb's arguments.
func (a *Api) verbHandler(verb string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := slack.SlashCommandParse(r)
		if err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("parse slash command: %w", err))
			return
		}

		text := strings.TrimSpace(verb + " " + s.Text)
		a.respond(w, r, a.commands.Handle(r.Context(), text, false))
	}
}

func (a *Api) respond(w http.ResponseWriter, r *http.Request, res commands.Response) {
	msg := &slack.Msg{
		Text:         res.Text,
		ResponseType: string(res.ResponseType),
	}

	if err := a.writeJSON(w, http.StatusOK, msg, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
