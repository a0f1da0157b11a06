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

	"github.com/amaldanavina3112/chennai-evento-connect/internal/config"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/database"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/handler"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/logger"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/repository"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/router"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/server"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the background workers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")

	return cmd
}

func runServe(ctx context.Context, migrate bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	if migrate {
		if err := database.Migrate(ctx, &log, cfg, -1); err != nil {
			log.Error().Err(err).Msg("failed to migrate database")
			return err
		}
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	repos := repository.NewRepositories(srv)
	services, err := service.NewServices(srv, repos)
	if err != nil {
		log.Error().Err(err).Msg("could not create services")
		return err
	}

	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runUntilStopped(ctx, &log, srv)
}

type lifecycle interface {
	Start() error
	Shutdown(ctx context.Context) error
}

// runUntilStopped blocks until ctx is cancelled or the server stops on its
// own, then shuts it down. A server that failed to start or stopped with an
// error is reported together with any shutdown error.
func runUntilStopped(ctx context.Context, log *zerolog.Logger, srv lifecycle) error {
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serveErr:
		if runErr != nil {
			log.Error().Err(runErr).Msg("server stopped unexpectedly")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return errors.Join(runErr, err)
	}

	if runErr != nil {
		return runErr
	}

	log.Info().Msg("server exited properly")
	return nil
}
