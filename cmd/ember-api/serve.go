package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/emberhq/ember/pkg/cmd"
	"github.com/emberhq/ember/pkg/log"
	"github.com/emberhq/ember/pkg/metrics"
	"github.com/emberhq/ember/pkg/settings"
	"github.com/urfave/cli/v3"
)

func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the settings API (default)",
		Action:  serveAction,
	}
}

func serveAction(ctx context.Context, command *cli.Command) error {
	cfg, err := resolveConfig(command)
	if err != nil {
		return err
	}

	log.Setup(cfg.Log.Level, cfg.Log.Format)

	logger := log.WithModule("api")

	logger.InfoContext(ctx, "Initializing Ember API", "port", cfg.Server.Port, "event_bus", cfg.EventBus.Type)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer, shutdownTracer, err := cmd.NewTracer(ctx, cfg.Tracing)
	if err != nil {
		return err
	}

	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Error("Failed to shutdown tracer provider", "error", err)
		}
	}()

	eventBus, err := cmd.NewEventBus(cfg.EventBus, logger)
	if err != nil {
		return err
	}

	defer func() {
		if err := eventBus.Close(); err != nil {
			logger.Error("Failed to close event bus", "error", err)
		}
	}()

	api := NewAPI(
		logger,
		settings.NewStore(),
		eventBus,
		tracer,
		metrics.New(),
		cfg,
	)

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down Ember API")

		if err := api.Shutdown(); err != nil {
			logger.Error("Failed to shutdown API server", "error", err)
		}
	}()

	if err := api.Start(cfg.Server.Port); err != nil {
		logger.Error("Failed to start API server", "error", err)

		return err
	}

	return nil
}
