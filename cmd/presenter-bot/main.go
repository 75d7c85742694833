package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/SergeyKozhin/presenter-bot/internal/api"
	"github.com/SergeyKozhin/presenter-bot/internal/business/commands"
	"github.com/SergeyKozhin/presenter-bot/internal/config"
	"github.com/SergeyKozhin/presenter-bot/internal/dates"
	"github.com/SergeyKozhin/presenter-bot/internal/notifications"
	"github.com/SergeyKozhin/presenter-bot/internal/pkg/chat"
	"github.com/SergeyKozhin/presenter-bot/internal/redis"
	"github.com/SergeyKozhin/presenter-bot/internal/storage"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	closer.Bind(cancel)

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initializae logger: %v", err)
	}

	st, err := storage.Open(ctx, logger)
	if err != nil {
		logger.Fatalw("unable to initialize store", "err", err)
	}

	parser := dates.NewParser(config.Location(), time.Now)
	executor := commands.NewExecutor(logger, st, parser)

	chatService := chat.NewService(
		config.SlackBotToken(),
		chat.WithAPIURL(config.SlackAPIURL()),
		chat.WithRateLimit(config.SlackRateLimit()),
	)
	sender := notifications.NewSender(logger, st, parser, chatService, config.SlackChannelID())

	var scheduler *notifications.Scheduler
	if config.RedisURL() != "" {
		lock := redis.NewTickLock(redis.NewRedisPool(logger), logger, config.TickLockTTL())
		scheduler = notifications.NewScheduler(logger, config.Location(), lock)
	} else {
		scheduler = notifications.NewScheduler(logger, config.Location(), nil)
	}
	if err := scheduler.Register(sender, config.ReminderCron(), config.TopicCron()); err != nil {
		logger.Fatalw("unable to schedule jobs", "err", err)
	}

	var opts []api.Option
	if config.SkipSignatureCheck() {
		logger.Warnw("slack signature check disabled")
		opts = append(opts, api.WithoutSignatureCheck())
	}

	api, err := api.NewApi(logger, config.SlackSigningSecret(), executor, sender, st, parser, opts...)
	if err != nil {
		logger.Fatalw("unable to initialize api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Infow("Started server", "port", config.Port())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return scheduler.Start(ctx)
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	go func() {
		if err := g.Wait(); err != nil {
			logger.Errorw("server error", "err", err)
		}
		closer.Close()
	}()

	closer.Hold()
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
