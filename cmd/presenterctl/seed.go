package main

import (
	"fmt"

	"github.com/SergeyKozhin/presenter-bot/internal/business/importer"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
	"github.com/spf13/cobra"
)

var (
	seedEvent string
	seedFrom  string
	seedCount int
)

func init() {
	seedCmd.Flags().StringVar(&seedEvent, "event", string(model.EventTypeFagdag), "Event type of the new dates")
	seedCmd.Flags().StringVar(&seedFrom, "from", "", "First date, e.g. 2020-05-07 or \"next thursday\"")
	seedCmd.Flags().IntVar(&seedCount, "count", 4, "Number of weekly dates to add")
	_ = seedCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Add empty dates on a weekly cadence",
	Example: `  presenterctl seed --from 2020-05-07 --count 10
  presenterctl seed --event formiddag --from "next tuesday" --count 4`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	from, err := newDateParser().Lenient(seedFrom)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}

	events, err := importer.Weekly(model.EventType(seedEvent), from, seedCount)
	if err != nil {
		return err
	}

	st, logger, err := openStore(cmd.Context())
	if err != nil {
		return err
	}

	report, err := importer.NewImporter(logger, st).Import(cmd.Context(), events)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d added, %d skipped\n", len(report.Added), len(report.Skipped))
	return nil
}
