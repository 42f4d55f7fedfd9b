package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/learning-journal/internal/adapters/http"
	"github.com/jsamuelsen/learning-journal/internal/adapters/http/handlers"
	"github.com/jsamuelsen/learning-journal/internal/app"
	"github.com/jsamuelsen/learning-journal/internal/platform/telemetry"
	"github.com/jsamuelsen/learning-journal/internal/ports"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the journal HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := bootstrap(opts, os.Stdout)
			if err != nil {
				return err
			}

			return serve(cmd.Context(), s)
		},
	}
}

func serve(ctx context.Context, s *session) error {
	cfg, logger := s.cfg, s.logger

	logger.Info("starting journal",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("database", cfg.Database.Driver),
	)

	// Telemetry is a noop when disabled.
	telProvider, err := telemetry.New(ctx, cfg.App, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	registry := telemetry.NewRegistry()

	metrics, err := telemetry.NewJournalMetrics(registry)
	if err != nil {
		return fmt.Errorf("registering journal metrics: %w", err)
	}

	store, err := s.openStore(ctx, metrics)
	if err != nil {
		return err
	}
	defer s.closeStore(store)

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	loc, err := cfg.Journal.Location()
	if err != nil {
		return err
	}

	journal := app.NewJournalService(app.JournalServiceConfig{
		Entries: store.Entries(),
		Tags:    store.Tags(),
		Metrics: metrics,
		Logger:  logger,
	})
	stats := app.NewStatsService(app.StatsServiceConfig{
		Source:   store.Entries(),
		Location: loc,
		Logger:   logger,
	})

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	server := http.New(&cfg.Server, logger)

	routerCfg := http.NewDefaultRouterConfig(logger, &cfg.App,
		handlers.NewHealthHandler(healthRegistry, buildInfo, registry),
		handlers.NewEntryHandler(journal),
		handlers.NewTagHandler(journal),
		handlers.NewStatsHandler(stats),
		handlers.NewBackupHandler(journal, loc),
	)
	if cfg.Server.RequestTimeout > 0 {
		routerCfg.Timeout = cfg.Server.RequestTimeout
	}

	http.SetupRouter(server.Engine(), routerCfg)

	serverErr, err := server.Start()
	if err != nil {
		return err
	}

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal arrives, ctx ends or the
// server fails, then drains in-flight requests.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))

	case <-ctx.Done():
		logger.Info("context done, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
