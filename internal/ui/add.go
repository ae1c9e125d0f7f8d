package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"weekplan/internal/calendar"
)

func (a *App) addCmd() *cobra.Command {
	var (
		dateFlag string
		startStr string
		endStr   string
		hour     int
		category string
		colorStr string
		location string
		desc     string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an event to the calendar",
		Long: `Adds an event on the given day.

With --hour the event fills that hour slot, the same as clicking an
empty cell in the grid. With --start/--end the times are explicit;
omitting --end gives the event the default one hour duration.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")

			day, err := parseDay(dateFlag)
			if err != nil {
				return err
			}

			var start, end = day, day
			switch {
			case cmd.Flags().Changed("hour"):
				start, end, err = calendar.CellSpan(day, hour, 0)
				if err != nil {
					return err
				}
			case startStr != "":
				start, err = calendar.At(day, startStr)
				if err != nil {
					return err
				}
				if endStr != "" {
					end, err = calendar.At(day, endStr)
					if err != nil {
						return err
					}
				} else {
					end = start.Add(calendar.DefaultEventDuration)
				}
			default:
				return fmt.Errorf("either --hour or --start is required")
			}

			draft, err := calendar.NewEventDraft(title, calendar.Category(category), start, end)
			if err != nil {
				return err
			}
			draft.Color = colorStr
			draft.Location = location
			draft.Description = desc

			st := a.newStore()
			created, err := st.CreateEvent(cmd.Context(), draft)
			if err != nil {
				return err
			}

			fmt.Printf("Added event %s\n", formatHeader(created.Title))
			PrintEventRow(created, maxTitleWidth(32))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "event date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&hour, "hour", 0, "hour slot to fill (0-23)")
	cmd.Flags().StringVar(&startStr, "start", "", "start time (HH:MM)")
	cmd.Flags().StringVar(&endStr, "end", "", "end time (HH:MM)")
	cmd.Flags().StringVarP(&category, "category", "c", string(calendar.CategoryWork), "event category")
	cmd.Flags().StringVar(&colorStr, "color", "", "explicit color override (hex)")
	cmd.Flags().StringVarP(&location, "location", "l", "", "event location")
	cmd.Flags().StringVar(&desc, "description", "", "event description")
	return cmd
}
