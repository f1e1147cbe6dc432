package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workorders/cmd"
	"workorders/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the notification delivery job",
		RunE: func(command *cobra.Command, args []string) error {
			cfg, err := ctx.config()
			if err != nil {
				return err
			}
			logger, err := ctx.log()
			if err != nil {
				return err
			}
			registry, err := ctx.registry()
			if err != nil {
				return err
			}
			db, err := ctx.database()
			if err != nil {
				return err
			}
			if err = postgres.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			app, err := cmd.NewCompositionRoot(cfg, db, registry, logger)
			if err != nil {
				return err
			}

			jobManager, err := app.CreateJobManager()
			if err != nil {
				return err
			}
			if err = jobManager.StartAll(); err != nil {
				return err
			}
			defer jobManager.StopAll()

			e, err := app.CreateRouter()
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(command.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			serveErr := make(chan error, 1)
			go func() {
				logger.Info("http server listening", "port", cfg.HTTPPort, "assets", registry.Len())
				serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
			}()

			select {
			case err = <-serveErr:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-runCtx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			logger.Info("shutting down")
			return e.Shutdown(shutdownCtx)
		},
	}
}
