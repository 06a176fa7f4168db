package cmd

import (
	"context"
	"log/slog"
	"testing"

	"github.com/emberhq/ember/pkg/channels/kafka"
	"github.com/emberhq/ember/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventBus(t *testing.T) {
	t.Parallel()

	t.Run("memory", func(t *testing.T) {
		t.Parallel()

		bus, err := NewEventBus(config.EventBusConfig{Type: config.EventBusMemory}, slog.Default())
		require.NoError(t, err)
		require.NotNil(t, bus)
		assert.NoError(t, bus.Close())
	})

	t.Run("kafka without brokers", func(t *testing.T) {
		t.Parallel()

		_, err := NewEventBus(config.EventBusConfig{Type: config.EventBusKafka}, slog.Default())
		require.ErrorIs(t, err, kafka.ErrNoBrokers)
	})

	t.Run("unknown provider", func(t *testing.T) {
		t.Parallel()

		_, err := NewEventBus(config.EventBusConfig{Type: "nats"}, slog.Default())
		require.Error(t, err)
	})
}

func TestNewTracer_Disabled(t *testing.T) {
	t.Parallel()

	tracer, shutdown, err := NewTracer(context.Background(), config.TracingConfig{})
	require.NoError(t, err)
	require.NotNil(t, tracer)
	assert.NoError(t, shutdown(context.Background()))
}
