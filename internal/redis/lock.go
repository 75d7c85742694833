package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const lockPrefix = "presenter-bot:tick:"

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(1, `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// TickLock makes sure one periodic job runs on at most one replica at a time.
type TickLock struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
	ttl    time.Duration
}

func NewTickLock(pool *redis.Pool, logger *zap.SugaredLogger, ttl time.Duration) *TickLock {
	return &TickLock{
		pool:   pool,
		logger: logger,
		ttl:    ttl,
	}
}

// Acquire tries to take the lock for job. When ok is false another replica
// holds it. The returned release func must be called once the job is done.
func (l *TickLock) Acquire(ctx context.Context, job string) (release func(), ok bool, err error) {
	conn, err := l.pool.GetContext(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("get redis conn: %w", err)
	}
	defer conn.Close()

	key := lockPrefix + job
	token := uuid.NewString()

	_, err = redis.String(conn.Do("SET", key, token, "NX", "PX", l.ttl.Milliseconds()))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("set lock %q: %w", key, err)
	}

	release = func() {
		conn := l.pool.Get()
		defer conn.Close()

		if _, err := releaseScript.Do(conn, key, token); err != nil {
			l.logger.Errorw("failed to release tick lock", "job", job, "err", err)
		}
	}

	return release, true, nil
}
