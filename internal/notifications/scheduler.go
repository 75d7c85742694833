package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// tickLock keeps a job from running on two replicas at once.
type tickLock interface {
	Acquire(ctx context.Context, job string) (release func(), ok bool, err error)
}

type job struct {
	name string
	spec string
	run  func(ctx context.Context) error
}

// Scheduler drives the Sender from cron specs. A tick that is still running
// when the next one fires causes that next one to be skipped.
type Scheduler struct {
	logger  *zap.SugaredLogger
	cron    *cron.Cron
	lock    tickLock
	timeout time.Duration
}

func NewScheduler(logger *zap.SugaredLogger, loc *time.Location, lock tickLock) *Scheduler {
	cronLogger := cronLogger{logger: logger}

	return &Scheduler{
		logger: logger,
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		lock:    lock,
		timeout: time.Minute,
	}
}

// Register adds the reminder and topic jobs of sender.
func (s *Scheduler) Register(sender *Sender, reminderSpec, topicSpec string) error {
	jobs := []job{
		{
			name: "reminder",
			spec: reminderSpec,
			run: func(ctx context.Context) error {
				_, err := sender.SendReminder(ctx)
				return err
			},
		},
		{
			name: "topic",
			spec: topicSpec,
			run: func(ctx context.Context) error {
				_, err := sender.SyncTopic(ctx)
				return err
			},
		},
	}

	for _, j := range jobs {
		if j.spec == "" {
			s.logger.Infow("job disabled", "job", j.name)
			continue
		}

		j := j
		if _, err := s.cron.AddFunc(j.spec, func() { s.tick(j) }); err != nil {
			return fmt.Errorf("add %s job: %w", j.name, err)
		}
	}

	return nil
}

// Start runs the scheduler until ctx is done, then waits for running ticks.
func (s *Scheduler) Start(ctx context.Context) error {
	s.cron.Start()
	s.logger.Infow("started scheduler", "jobs", len(s.cron.Entries()))

	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.logger.Info("stopped scheduler")
	return nil
}

func (s *Scheduler) tick(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if s.lock != nil {
		release, ok, err := s.lock.Acquire(ctx, j.name)
		if err != nil {
			s.logger.Errorw("failed to acquire tick lock", "job", j.name, "err", err)
			return
		}
		if !ok {
			s.logger.Debugw("tick running elsewhere", "job", j.name)
			return
		}
		defer release()
	}

	if err := j.run(ctx); err != nil {
		s.logger.Errorw("job failed", "job", j.name, "err", err)
	}
}

type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append(keysAndValues, "err", err)...)
}
