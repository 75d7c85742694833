package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyKozhin/presenter-bot/internal/model"
	"github.com/SergeyKozhin/presenter-bot/internal/store"
	"go.uber.org/zap"
)

// Report lists what an import did with each date.
type Report struct {
	Added   []time.Time
	Skipped []time.Time
}

type Importer struct {
	logger *zap.SugaredLogger
	store  store.Store
}

func NewImporter(logger *zap.SugaredLogger, st store.Store) *Importer {
	return &Importer{
		logger: logger,
		store:  st,
	}
}

// Import inserts events in a single unit of work. Dates already in the
// schedule are left untouched and reported as skipped.
func (i *Importer) Import(ctx context.Context, events []*model.Event) (*Report, error) {
	var report Report

	err := i.store.InTx(ctx, func(ctx context.Context, tx store.Events) error {
		report = Report{}

		for _, e := range events {
			if _, err := tx.GetByDate(ctx, e.When); err == nil {
				report.Skipped = append(report.Skipped, e.When)
				continue
			} else if !errors.Is(err, model.ErrNoRecord) {
				return fmt.Errorf("get event: %w", err)
			}

			if err := tx.Insert(ctx, e); err != nil {
				return fmt.Errorf("insert event: %w", err)
			}
			report.Added = append(report.Added, e.When)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	i.logger.Infow("imported schedule", "added", len(report.Added), "skipped", len(report.Skipped))
	return &report, nil
}
