package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) goalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goals",
		Short: "List goals and their tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := a.newStore()
			if err := st.FetchGoals(cmd.Context()); err != nil {
				return err
			}

			goals := st.Snapshot().Goals
			if len(goals) == 0 {
				fmt.Println(formatMuted("no goals yet, create one with: weekplan goal <name>"))
				return nil
			}

			fmt.Println()
			for _, g := range goals {
				fmt.Printf("%s %s %s\n",
					formatHeader(g.Name),
					formatMuted(g.Color),
					formatMuted("("+g.ID+")"))
				if len(g.Tasks) == 0 {
					fmt.Println(formatMuted("    no tasks"))
					continue
				}
				for _, t := range g.Tasks {
					mark := "[ ]"
					if t.Completed {
						mark = "[x]"
					}
					fmt.Printf("  %s %s %s\n", mark, t.Name, formatMuted("("+t.ID+")"))
				}
			}
			fmt.Println()
			return nil
		},
	}
}

func (a *App) goalCmd() *cobra.Command {
	var colorStr string

	cmd := &cobra.Command{
		Use:   "goal <name>",
		Short: "Create a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := a.newStore()
			g, err := st.CreateGoal(cmd.Context(), args[0], colorStr)
			if err != nil {
				return err
			}
			fmt.Printf("Created goal %s %s\n", formatHeader(g.Name), formatMuted("("+g.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVar(&colorStr, "color", "#3B82F6", "goal color (hex)")
	return cmd
}

func (a *App) taskCmd() *cobra.Command {
	var goalID string

	cmd := &cobra.Command{
		Use:   "task <name>",
		Short: "Create a task under a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if goalID == "" {
				return fmt.Errorf("--goal is required")
			}
			st := a.newStore()
			t, err := st.CreateTask(cmd.Context(), args[0], goalID)
			if err != nil {
				return err
			}
			fmt.Printf("Created task %s %s\n", formatHeader(t.Name), formatMuted("("+t.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&goalID, "goal", "g", "", "id of the goal that owns the task")
	return cmd
}
