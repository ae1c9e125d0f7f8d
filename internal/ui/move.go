package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"weekplan/internal/calendar"
)

func (a *App) moveCmd() *cobra.Command {
	var (
		dateFlag string
		clock    string
	)

	cmd := &cobra.Command{
		Use:   "move <event-id>",
		Short: "Move an event to a new slot",
		Long: `Moves an event to a new day and start time, keeping its duration.

This is the command line equivalent of dragging an event onto another
cell of the weekly grid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			day, err := parseDay(dateFlag)
			if err != nil {
				return err
			}
			hour, minute, err := calendar.ParseClock(clock)
			if err != nil {
				return err
			}

			st := a.newStore()
			if err := st.FetchEvents(cmd.Context()); err != nil {
				return err
			}

			var event calendar.Event
			found := false
			for _, e := range st.Snapshot().Events {
				if e.ID == id {
					event = e
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("event %q: %w", id, calendar.ErrEventNotFound)
			}

			fraction := float64(minute) / 60
			if err := st.Drop(cmd.Context(), calendar.EventDrag{Event: event}, day, hour, fraction); err != nil {
				return err
			}

			moved := event
			for _, e := range st.Snapshot().Events {
				if e.ID == id {
					moved = e
					break
				}
			}

			fmt.Printf("Moved event %s\n", formatHeader(moved.Title))
			PrintEventRow(moved, maxTitleWidth(32))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "target date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&clock, "time", "t", "09:00", "target start time (HH:MM)")
	return cmd
}
