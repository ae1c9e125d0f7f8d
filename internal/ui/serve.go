package ui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"weekplan/internal/db"
	"weekplan/internal/logging"
	"weekplan/internal/server"
)

func (a *App) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the calendar API server",
		Long:  "Starts the HTTP API server backed by the local SQLite database.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(a.config.Log.Level, a.config.Log.Format)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer log.Close()

			store, err := db.New(a.config.Storage.DBPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer store.Close()

			if addr == "" {
				addr = a.config.Server.ListenAddr
			}

			srv := server.New(store, log)

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start(addr)
			}()

			log.Infow("server listening", "addr", addr, "db", a.config.Storage.DBPath)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-stop:
				log.Infow("shutting down", "signal", sig.String())
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
