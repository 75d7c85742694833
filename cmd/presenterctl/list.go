package main

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/presenter-bot/internal/business/calendar"
	"github.com/SergeyKozhin/presenter-bot/internal/business/commands"
	"github.com/SergeyKozhin/presenter-bot/internal/business/format"
	"github.com/SergeyKozhin/presenter-bot/internal/dates"
	"github.com/SergeyKozhin/presenter-bot/internal/model"
	"github.com/SergeyKozhin/presenter-bot/internal/store"
	"github.com/spf13/cobra"
)

var listICS bool

func init() {
	listCmd.Flags().BoolVar(&listICS, "ics", false, "Print the schedule as an iCalendar feed")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List upcoming events",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	st, _, err := openStore(cmd.Context())
	if err != nil {
		return err
	}

	parser := newDateParser()

	var upcoming []*model.Event
	err = st.InTx(cmd.Context(), func(ctx context.Context, events store.Events) error {
		var err error
		upcoming, err = events.GetUpcoming(ctx, parser.Today())
		return err
	})
	if err != nil {
		return fmt.Errorf("get upcoming events: %w", err)
	}

	out := cmd.OutOrStdout()

	if listICS {
		fmt.Fprint(out, calendar.ICS(upcoming, parser.Now()))
		return nil
	}

	if len(upcoming) == 0 {
		fmt.Fprintln(out, commands.NoEventsMessage)
		return nil
	}

	for _, e := range upcoming {
		fmt.Fprintf(out, "%-10s  %-9s  %s\n", dates.ISO(e.When), e.EventType, format.Event(e))
	}

	return nil
}
