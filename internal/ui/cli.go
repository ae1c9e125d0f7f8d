// Package ui provides the weekplan command line interface.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"weekplan/internal/api"
	"weekplan/internal/config"
	"weekplan/internal/logging"
	"weekplan/internal/store"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "weekplan",
		Short: "A weekly calendar and goal tracker",
		Long: `Weekplan is a personal calendar and goal tracker.

Goals own tasks; tasks can be scheduled onto the weekly hour grid,
which turns them into events. The serve command runs the API that
backs the calendar; the remaining commands are thin clients of it.`,
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.serveCmd())
	a.root.AddCommand(a.weekCmd())
	a.root.AddCommand(a.agendaCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.goalsCmd())
	a.root.AddCommand(a.goalCmd())
	a.root.AddCommand(a.taskCmd())
	a.root.AddCommand(a.scheduleCmd())

	return a
}

// newStore builds a store wired to the configured API.
func (a *App) newStore() *store.Store {
	client := api.New(a.config.Client.BaseURL)
	return store.New(client, logging.Nop())
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("weekplan %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
