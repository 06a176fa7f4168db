package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/emberhq/ember/pkg/cmd"
	"github.com/emberhq/ember/pkg/config"
	"github.com/emberhq/ember/pkg/eventbus"
	"github.com/emberhq/ember/pkg/events"
	"github.com/emberhq/ember/pkg/log"
	"github.com/urfave/cli/v3"
)

func WatchCommand() *cli.Command {
	return &cli.Command{
		Name:    "watch",
		Aliases: []string{"w"},
		Usage:   "Log settings change events as they are published",
		Action: func(ctx context.Context, command *cli.Command) error {
			cfg, err := resolveConfig(command)
			if err != nil {
				return err
			}

			log.Setup(cfg.Log.Level, cfg.Log.Format)

			logger := log.WithModule("watch")

			if cfg.EventBus.Type == config.EventBusMemory {
				logger.WarnContext(ctx, "The memory event bus only delivers events inside one process, nothing will be received")
			}

			eventBus, err := cmd.NewEventBus(cfg.EventBus, logger)
			if err != nil {
				return err
			}

			defer func() {
				if err := eventBus.Close(); err != nil {
					logger.Error("Failed to close event bus", "error", err)
				}
			}()

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			for _, eventType := range events.AllEventTypes {
				if err := eventBus.Handle(eventType, logEvent(logger)); err != nil {
					return err
				}
			}

			if err := eventBus.Subscribe(ctx); err != nil {
				logger.ErrorContext(ctx, "Failed to subscribe to event bus", "error", err)

				return err
			}

			logger.InfoContext(ctx, "Watching settings events", "topic", events.Topic)

			<-ctx.Done()
			logger.Info("Stopped watching settings events")

			return nil
		},
	}
}

func logEvent(logger *slog.Logger) eventbus.EventHandler {
	return func(ctx context.Context, event any) error {
		typed, ok := event.(eventbus.Event)
		if !ok {
			return nil
		}

		logger.InfoContext(ctx, "Settings event received", "event_type", typed.GetType(), "event", event)

		return nil
	}
}
