package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"weekplan/internal/calendar"
)

func (a *App) agendaCmd() *cobra.Command {
	var dateFlag string
	var all bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show an hour-by-hour agenda for one day",
		Long:  "Shows a single day as hour rows, the way the calendar grid lays them out.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}
			day, err := parseDay(dateFlag)
			if err != nil {
				return err
			}

			st := a.newStore()
			if err := st.FetchEvents(cmd.Context()); err != nil {
				return err
			}

			d := calendar.NewDay(day)
			for _, e := range st.Snapshot().Events {
				if calendar.SameDay(e.StartTime, day) {
					d.Add(e)
				}
			}

			fmt.Printf("\n%s\n", formatHeader(day.Format("Monday, Jan 2 2006")))
			printRule()

			width := maxTitleWidth(32)
			for hour := 0; hour < calendar.HoursPerDay; hour++ {
				events := d.EventsAtHour(hour)
				if len(events) == 0 && !all {
					continue
				}
				fmt.Printf("%s\n", formatMuted(calendar.Clock(hour, 0)))
				for _, e := range events {
					top, height := calendar.EventGeometry(e.StartTime, e.EndTime)
					PrintEventRow(e, width)
					fmt.Printf("      %s\n",
						formatMuted(fmt.Sprintf("top %.1f%% height %.1f%%", top, height)))
				}
			}

			printRule()
			fmt.Printf("%d events\n\n", d.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "date to show (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&all, "all", false, "show empty hours too")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
