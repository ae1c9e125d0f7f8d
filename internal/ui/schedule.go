package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"weekplan/internal/calendar"
)

func (a *App) scheduleCmd() *cobra.Command {
	var (
		dateFlag string
		clock    string
	)

	cmd := &cobra.Command{
		Use:   "schedule <task-id>",
		Short: "Schedule a task onto the calendar",
		Long: `Schedules a task into an hour slot, creating a one hour event that
carries the task's name and its goal's color. This is the command line
equivalent of dragging a task from the sidebar onto the grid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID := args[0]

			day, err := parseDay(dateFlag)
			if err != nil {
				return err
			}
			hour, minute, err := calendar.ParseClock(clock)
			if err != nil {
				return err
			}

			st := a.newStore()
			if err := st.FetchGoals(cmd.Context()); err != nil {
				return err
			}

			var (
				task  calendar.Task
				color string
				found bool
			)
			for _, g := range st.Snapshot().Goals {
				for _, t := range g.Tasks {
					if t.ID == taskID {
						task = t
						color = g.Color
						found = true
					}
				}
			}
			if !found {
				return fmt.Errorf("task %q not found in any goal", taskID)
			}

			drag := calendar.TaskDrag{
				TaskID:    task.ID,
				TaskName:  task.Name,
				GoalColor: color,
			}
			fraction := float64(minute) / 60
			if err := st.Drop(cmd.Context(), drag, day, hour, fraction); err != nil {
				return err
			}

			events := st.Snapshot().Events
			if len(events) > 0 {
				created := events[len(events)-1]
				fmt.Printf("Scheduled task %s\n", formatHeader(task.Name))
				PrintEventRow(created, maxTitleWidth(32))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "target date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&clock, "time", "t", "09:00", "target start time (HH:MM)")
	return cmd
}
