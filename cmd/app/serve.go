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

	"retail/cmd"
	httpin "retail/internal/adapters/in/http"
	"retail/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the delivery board and the background jobs",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			configs, logger, err := opts.load()
			if err != nil {
				return err
			}

			gormDB, err := postgres.Open(configs.Database(), configs.Debug)
			if err != nil {
				return err
			}
			readDB, err := postgres.OpenReadModel(configs.Database())
			if err != nil {
				return err
			}
			defer readDB.Close()

			app, err := cmd.NewCompositionRoot(configs, gormDB, readDB, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go app.Board().Run(ctx)

			jobManager := app.CreateJobManager()
			if err = jobManager.StartAll(); err != nil {
				return err
			}
			defer jobManager.StopAll()

			e, err := httpin.NewRouter(app.CreateRouterConfig())
			if err != nil {
				return err
			}

			serveErr := make(chan error, 1)
			go func() {
				serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
			}()

			select {
			case err = <-serveErr:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}
}
