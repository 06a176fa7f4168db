package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ember.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	assert.Equal(t, 9091, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, EventBusMemory, cfg.EventBus.Type)
	assert.False(t, cfg.StrictPayloads)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
server:
  port: 8080
  cors:
    allowed_origins: ["http://localhost:5173"]
log:
  level: debug
event_bus:
  type: kafka
  kafka:
    brokers: ["localhost:9092"]
strict_payloads: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset keys keep defaults")
	assert.Equal(t, EventBusKafka, cfg.EventBus.Type)
	assert.Equal(t, []string{"localhost:9092"}, cfg.EventBus.Kafka.Brokers)
	assert.Equal(t, "ember", cfg.EventBus.Kafka.ConsumerGroup)
	assert.True(t, cfg.StrictPayloads)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "server: [unclosed"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectedErr error
	}{
		{
			name:        "port out of range",
			mutate:      func(c *Config) { c.Server.Port = 70000 },
			expectedErr: ErrInvalidPort,
		},
		{
			name:        "unknown log format",
			mutate:      func(c *Config) { c.Log.Format = "xml" },
			expectedErr: ErrInvalidLogFormat,
		},
		{
			name:        "unknown log level",
			mutate:      func(c *Config) { c.Log.Level = "trace" },
			expectedErr: ErrInvalidLogLevel,
		},
		{
			name:        "unknown event bus",
			mutate:      func(c *Config) { c.EventBus.Type = "nats" },
			expectedErr: ErrInvalidEventBus,
		},
		{
			name:        "kafka without brokers",
			mutate:      func(c *Config) { c.EventBus.Type = EventBusKafka },
			expectedErr: ErrNoKafkaBrokers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(&cfg)

			assert.ErrorIs(t, cfg.Validate(), tt.expectedErr)
		})
	}
}
