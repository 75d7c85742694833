// Command presenterctl administers the presentation schedule outside Slack.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/SergeyKozhin/presenter-bot/internal/config"
	"github.com/SergeyKozhin/presenter-bot/internal/dates"
	"github.com/SergeyKozhin/presenter-bot/internal/storage"
	"github.com/SergeyKozhin/presenter-bot/internal/store"
	"github.com/spf13/cobra"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

var driver string

func main() {
	defer closer.Close()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		closer.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "presenterctl",
	Short: "Manage the presentation schedule",
	Long: `presenterctl manages the schedule used by presenter-bot.

The store is selected the same way as for the bot (STORE_DRIVER,
POSTGRES_URL, SQLITE_PATH); --driver overrides STORE_DRIVER.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "Store driver: postgres, sqlite or memory")
}

func newLogger() (*zap.SugaredLogger, error) {
	conf := zap.NewDevelopmentConfig()
	conf.DisableStacktrace = true

	logger, err := conf.Build()
	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}

func openStore(ctx context.Context) (store.Store, *zap.SugaredLogger, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	d := driver
	if d == "" {
		d = config.StoreDriver()
	}

	st, err := storage.OpenDriver(ctx, logger, d)
	if err != nil {
		return nil, nil, err
	}

	return st, logger, nil
}

func newDateParser() *dates.Parser {
	return dates.NewParser(config.Location(), time.Now)
}
