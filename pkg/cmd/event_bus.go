// Package cmd holds the wiring shared by ember command line entry points.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/emberhq/ember/pkg/channels/gochannel"
	"github.com/emberhq/ember/pkg/channels/kafka"
	"github.com/emberhq/ember/pkg/config"
	"github.com/emberhq/ember/pkg/eventbus"
)

// NewEventBus creates the event bus selected by cfg.
func NewEventBus(cfg config.EventBusConfig, logger *slog.Logger) (eventbus.EventBus, error) {
	wmLogger := watermill.NewSlogLogger(logger)

	switch cfg.Type {
	case config.EventBusMemory, "":
		pub, sub, err := gochannel.CreateChannel(wmLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to create in-memory pub/sub: %w", err)
		}

		return eventbus.NewWatermillEventBus(pub, sub), nil
	case config.EventBusKafka:
		pub, sub, err := kafka.CreateChannel(wmLogger, cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup)
		if err != nil {
			return nil, fmt.Errorf("failed to create Kafka pub/sub: %w", err)
		}

		return eventbus.NewWatermillEventBus(pub, sub), nil
	default:
		return nil, fmt.Errorf("unsupported event bus provider: %s", cfg.Type)
	}
}
