package api

import (
	"context"
	"net/http"

	"github.com/SergeyKozhin/presenter-bot/internal/business/commands"
	"github.com/SergeyKozhin/presenter-bot/internal/dates"
	"github.com/SergeyKozhin/presenter-bot/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Api struct {
	handler http.Handler
	logger  *zap.SugaredLogger

	signingSecret string
	skipVerify    bool

	commands commandHandler
	notifier notifier
	store    store.Store
	dates    *dates.Parser
}

type commandHandler interface {
	Handle(ctx context.Context, text string, silent bool) commands.Response
}

type notifier interface {
	Notify(ctx context.Context, channel, text string)
	NotifyUser(ctx context.Context, channel, user, text string)
}

type Option func(a *Api)

// WithoutSignatureCheck accepts unsigned requests. Only meant for local runs.
func WithoutSignatureCheck() Option {
	return func(a *Api) {
		a.skipVerify = true
	}
}

func NewApi(
	logger *zap.SugaredLogger,
	signingSecret string,
	commands commandHandler,
	notifier notifier,
	st store.Store,
	parser *dates.Parser,
	opts ...Option,
) (*Api, error) {
	a := &Api{
		logger:        logger,
		signingSecret: signingSecret,
		commands:      commands,
		notifier:      notifier,
		store:         st,
		dates:         parser,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api/v1.0", func(r chi.Router) {
		r.Get("/schedule.ics", a.scheduleCalendarHandler)

		r.Group(func(r chi.Router) {
			r.Use(a.verifySlack)

			r.Post("/commands", a.commandHandler)
			r.Post("/next", a.verbHandler("next"))
			r.Post("/upcoming", a.verbHandler("upcoming"))
			r.Post("/events", a.slackEventsHandler)
		})
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
