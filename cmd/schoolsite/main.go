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

	"github.com/deppfellow/schoolsite/internal/config"
	"github.com/deppfellow/schoolsite/internal/database"
	"github.com/deppfellow/schoolsite/internal/handler"
	"github.com/deppfellow/schoolsite/internal/logger"
	"github.com/deppfellow/schoolsite/internal/repository"
	"github.com/deppfellow/schoolsite/internal/router"
	"github.com/deppfellow/schoolsite/internal/server"
	"github.com/deppfellow/schoolsite/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const DefaultContextTimeout = 30

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  func(cmd *cobra.Command, _ []string) error { return runServe(cmd.Context()) },
	}

	root := &cobra.Command{
		Use:           "schoolsite",
		Short:         "School website backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.AddCommand(serve, newMigrateCommand(), newSeedCommand())
	return root
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, loggerService, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			if cfg.Database.Driver != config.DriverPostgres {
				log.Info().Str("driver", cfg.Database.Driver).Msg("schema is created when the store opens, nothing to migrate")
				return nil
			}

			if err := database.Migrate(cmd.Context(), &log, cfg); err != nil {
				log.Error().Err(err).Msg("failed to migrate database")
				return err
			}
			return nil
		},
	}
}

func newSeedCommand() *cobra.Command {
	var samples bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the administrator account and optionally sample content",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, loggerService, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			srv, services, err := build(cfg, &log, loggerService)
			if err != nil {
				return err
			}
			defer srv.Shutdown(context.Background())

			ctx := cmd.Context()
			if _, err := services.Seed.SeedAdmin(ctx); err != nil {
				log.Error().Err(err).Msg("failed to seed administrator")
				return err
			}

			if !samples {
				return nil
			}

			report, err := services.Seed.SeedSamples(ctx)
			if err != nil {
				log.Error().Err(err).Msg("failed to seed sample content")
				return err
			}
			log.Info().
				Int("news", report.News).
				Int("events", report.Events).
				Int("results", report.Results).
				Int("toppers", report.Toppers).
				Int("faculty", report.Faculty).
				Msg("sample content seeded")
			return nil
		},
	}

	cmd.Flags().BoolVar(&samples, "sample", false, "also insert sample news, events, results, toppers and faculty")
	return cmd
}

func bootstrap() (*config.Config, zerolog.Logger, *logger.LoggerService, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		return nil, zerolog.Nop(), nil, err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	return cfg, logger.NewLoggerWithService(cfg.Observability, loggerService), loggerService, nil
}

func build(cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) (*server.Server, *service.Services, error) {
	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		return nil, nil, err
	}

	services, err := service.NewService(srv, repository.NewRepositories(srv))
	if err != nil {
		log.Error().Err(err).Msg("could not create services")
		srv.Shutdown(context.Background())
		return nil, nil, err
	}

	return srv, services, nil
}

func runServe(ctx context.Context) error {
	cfg, log, loggerService, err := bootstrap()
	if err != nil {
		return err
	}
	defer loggerService.Shutdown()

	if cfg.Database.Driver == config.DriverPostgres && cfg.Primary.Env != "local" {
		if err := database.Migrate(ctx, &log, cfg); err != nil {
			log.Error().Err(err).Msg("failed to migrate database")
			return err
		}
	}

	srv, services, err := build(cfg, &log, loggerService)
	if err != nil {
		return err
	}

	if _, err := services.Seed.SeedAdmin(ctx); err != nil {
		log.Error().Err(err).Msg("failed to seed administrator")
	}

	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.NewRouter(srv, handlers, services))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("failed to start server")
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
