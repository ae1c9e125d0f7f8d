package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <event-id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := a.newStore()
			if err := st.DeleteEvent(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted event %s\n", args[0])
			return nil
		},
	}
}
