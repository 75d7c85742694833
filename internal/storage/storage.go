package storage

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/presenter-bot/internal/config"
	"github.com/SergeyKozhin/presenter-bot/internal/database"
	"github.com/SergeyKozhin/presenter-bot/internal/database/events"
	"github.com/SergeyKozhin/presenter-bot/internal/database/sqlite"
	"github.com/SergeyKozhin/presenter-bot/internal/store"
	"github.com/SergeyKozhin/presenter-bot/internal/store/memory"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
	DriverMemory   = "memory"
)

// Open builds the store selected by STORE_DRIVER and makes sure its schema
// exists. Connections are released through closer.
func Open(ctx context.Context, logger *zap.SugaredLogger) (store.Store, error) {
	return OpenDriver(ctx, logger, config.StoreDriver())
}

func OpenDriver(ctx context.Context, logger *zap.SugaredLogger, driver string) (store.Store, error) {
	switch driver {
	case DriverPostgres:
		db, err := database.NewPGX(ctx, config.PostgresURL())
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}

		if err := database.Migrate(ctx, db); err != nil {
			return nil, err
		}

		logger.Infow("using postgres store")
		return events.NewStore(db, events.NewRepository()), nil

	case DriverSqlite:
		st, err := sqlite.Open(ctx, config.SqlitePath())
		if err != nil {
			return nil, err
		}

		closer.Bind(func() {
			if err := st.Close(); err != nil {
				logger.Errorw("failed closing sqlite store", "err", err)
			}
		})

		logger.Infow("using sqlite store", "path", config.SqlitePath())
		return st, nil

	case DriverMemory:
		logger.Warnw("using in-memory store, the schedule is lost on restart")
		return memory.NewStore(), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
