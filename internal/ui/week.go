package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"weekplan/internal/calendar"
)

func (a *App) weekCmd() *cobra.Command {
	var dateFlag string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the weekly calendar",
		Long:  "Shows all events for the week containing the given date, grouped by day.",
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

			week := calendar.NewWeekFromEvents(day, st.Snapshot().Events)

			fmt.Printf("\n%s\n",
				formatHeader(fmt.Sprintf("Week of %s - %s",
					week.StartDate.Format("Jan 2"),
					week.EndDate().Format("Jan 2, 2006"))))
			printRule()

			width := maxTitleWidth(32)
			total := 0
			for _, d := range week.Days {
				printDayHeader(d.Date)
				if d.Len() == 0 {
					fmt.Println(formatMuted("    no events"))
					continue
				}
				for _, e := range d.Events() {
					PrintEventRow(e, width)
					total++
				}
			}

			printRule()
			fmt.Printf("%d events\n\n", total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "any date inside the week (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
