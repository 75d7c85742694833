package main

import (
	"fmt"
	"os"

	"github.com/SergeyKozhin/presenter-bot/internal/business/importer"
	"github.com/SergeyKozhin/presenter-bot/internal/dates"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <schedule.yaml>",
	Short: "Import a schedule file",
	Long: `Import events from a YAML file keyed by date:

  2020-05-07:
    event: fagdag
    who: Ada
    what: Engines

Dates already in the schedule are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open schedule: %w", err)
	}
	defer f.Close()

	events, err := importer.ParseYAML(f)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	st, logger, err := openStore(cmd.Context())
	if err != nil {
		return err
	}

	report, err := importer.NewImporter(logger, st).Import(cmd.Context(), events)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d added, %d skipped\n", len(report.Added), len(report.Skipped))
	for _, when := range report.Skipped {
		fmt.Fprintf(out, "  skipped %s: already in schedule\n", dates.ISO(when))
	}

	return nil
}
